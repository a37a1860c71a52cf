package domain

// Archive member names.
const (
	HeaderMember = "header.json"
	PartyMember  = "party.json"
	PlayerMember = "player.json"
)

// RequiredMembers lists the documents every save archive must contain.
var RequiredMembers = []string{HeaderMember, PartyMember, PlayerMember}

// IsRequiredMember reports whether name is one of the rewritten documents.
func IsRequiredMember(name string) bool {
	return name == HeaderMember || name == PartyMember || name == PlayerMember
}

// Header is the save's header document.
type Header struct {
	Name                 string
	CompatibilityVersion uint64
}

// Party holds the player's companions.
type Party struct {
	Characters []Character
}

// Character is one unit of the party.
type Character struct {
	// ID is the $id of the unit's entity object.
	ID        string
	Name      string
	Blueprint string

	Experience uint64
	// MythicExperience is nil when the unit has no mythic progression.
	MythicExperience *uint64

	Stats []Stat
}

// FindStat returns the stat of the given type, or nil.
func (c *Character) FindStat(statType string) *Stat {
	for i := range c.Stats {
		if c.Stats[i].Type == statType {
			return &c.Stats[i]
		}
	}
	return nil
}

// Stat is one character statistic.
type Stat struct {
	// ID is the $id of the stat object.
	ID   string
	Type string
	// BaseValue is nil for derived stats that carry no base value.
	BaseValue *uint64
}

// Player is the player document.
type Player struct {
	ID    string
	Money uint64
	// Kingdom is nil before the crusade starts.
	Kingdom *Kingdom
}

// Kingdom holds the crusade's resource pools.
type Kingdom struct {
	ID               string
	Resources        KingdomResources
	ResourcesPerTurn KingdomResources
}

// KingdomResources is one set of crusade resources.
type KingdomResources struct {
	ID        string
	Finances  uint64
	Materials uint64
	Favors    uint64
	Mana      uint64
}

// LoadResult is the payload of a successful load.
type LoadResult struct {
	Header      Header
	Party       Party
	Player      Player
	ArchivePath string
}

// SaveResult is the payload of a successful save.
type SaveResult struct {
	// RecordID identifies the history record of this save.
	RecordID   string
	OutputPath string
	SaveName   string
}
