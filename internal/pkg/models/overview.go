package models

// Overview summarizes the collections held by an admin session
type Overview struct {
	Admin          string
	CombosLoaded   bool
	Combos         int
	ActiveCombos   int
	DriversLoaded  bool
	Drivers        int
	PendingDrivers int
}
