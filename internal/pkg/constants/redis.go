package constants

// Redis key formats
const (
	KeyAdminToken = "kaviar_admin_token:%s" // Format: kaviar_admin_token:{session_id}
	KeyAdminView  = "kaviar_admin_view:%s"  // Hash of held list collections, field = view name
)

// Held collection names
const (
	ViewCombos  = "combos"
	ViewDrivers = "drivers"
)
