package constants

// NATS subjects for admin audit events
const (
	SubjectComboCreated = "kaviar.admin.combo.created"
	SubjectComboUpdated = "kaviar.admin.combo.updated"
	SubjectComboDeleted = "kaviar.admin.combo.deleted"

	SubjectDriverCreated  = "kaviar.admin.driver.created"
	SubjectDriverUpdated  = "kaviar.admin.driver.updated"
	SubjectDriverDeleted  = "kaviar.admin.driver.deleted"
	SubjectDriverApproved = "kaviar.admin.driver.approved"
	SubjectDriverRejected = "kaviar.admin.driver.rejected"
)
