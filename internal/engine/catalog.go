package engine

// RewardType distinguishes purchasable rewards from streak milestones.
type RewardType string

const (
	RewardShop   RewardType = "SHOP"
	RewardStreak RewardType = "STREAK"
)

// Reward is a static catalog entry. Shop rewards carry a point cost; streak
// badges carry the streak length that grants them. The catalog itself is
// immutable reference data and never persisted.
type Reward struct {
	ID             string
	Title          string
	Description    string
	Icon           string
	Type           RewardType
	Cost           int
	StreakRequired int
}

var rewardCatalog = []Reward{
	{ID: "r1", Title: "Event Gourmet", Description: "You know your way around culture.", Icon: "🎭", Type: RewardShop, Cost: 10},
	{ID: "r2", Title: "Culture Hunter", Description: "Events across every category.", Icon: "🏹", Type: RewardShop, Cost: 100},
	{ID: "r3", Title: "Backstage Pass", Description: "Exclusive content badge.", Icon: "🎟️", Type: RewardShop, Cost: 200},
	{ID: "r4", Title: "Map Explorer", Description: "Quite the wanderer.", Icon: "🗺️", Type: RewardShop, Cost: 400},
	{ID: "r5", Title: "Mystery Trophy", Description: "Surprise reward.", Icon: "🏆", Type: RewardShop, Cost: 800},
	{ID: "r6", Title: "Dead on Target", Description: "You hit the mark dead center.", Icon: "🎯", Type: RewardShop, Cost: 800},

	{ID: "streak10", Title: "10-Day Streak", Description: "Logged in 10 days in a row.", Icon: "🔥", Type: RewardStreak, StreakRequired: 10},
	{ID: "streak20", Title: "20-Day Streak", Description: "20 days without giving up!", Icon: "🔥", Type: RewardStreak, StreakRequired: 20},
	{ID: "streak30", Title: "30-Day Streak", Description: "Legendary discipline!", Icon: "🔥", Type: RewardStreak, StreakRequired: 30},
}

// Catalog returns the reward catalog.
func Catalog() []Reward {
	return rewardCatalog
}

// RewardByID looks up a catalog entry.
func RewardByID(id string) (Reward, bool) {
	for _, r := range rewardCatalog {
		if r.ID == id {
			return r, true
		}
	}
	return Reward{}, false
}
