package domain

const (
	// UnknownRequiredGil marks an ability grade whose gil cost has not been observed yet
	UnknownRequiredGil = 32767

	// KnownEquipFactor is the only equip factor observed in party payloads
	KnownEquipFactor = "100"

	// KeeperJobName is the job of the protagonist, displayed as TyroName
	KeeperJobName = "Keeper"
	TyroName      = "Tyro"

	// ImagePathPrefix is stripped from every image path found in payloads
	ImagePathPrefix = "/dff"

	// RecentLogLimit caps the log category listing
	RecentLogLimit = 100
)
