package usecase

import (
	"context"

	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/models"
	"github.com/usbtecnok/kaviar-admin-os/internal/pkg/session"
)

// Overview summarizes what the session currently holds; nothing is fetched
func (uc *AuthUC) Overview(ctx context.Context, sess *session.Session) (*models.Overview, error) {
	combos, err := uc.authRepo.HeldCombos(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	drivers, err := uc.authRepo.HeldDrivers(ctx, sess.ID)
	if err != nil {
		return nil, err
	}

	overview := &models.Overview{
		Admin:         sess.Admin,
		CombosLoaded:  combos.Status == models.ListReady,
		Combos:        combos.Len(),
		DriversLoaded: drivers.Status == models.ListReady,
		Drivers:       drivers.Len(),
	}
	for _, c := range combos.Items {
		if c.IsActive {
			overview.ActiveCombos++
		}
	}
	for _, d := range drivers.Items {
		if d.ApprovalStatus.Normalize() == models.ApprovalPending {
			overview.PendingDrivers++
		}
	}
	return overview, nil
}
