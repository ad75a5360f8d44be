package domain

import "time"

// Default session scoring constants, used when a scenario does not override them.
const (
	DefaultBasePoints = 120
	DefaultComboBonus = 40
)

// Choice is a selectable answer within a round. Points of zero means the
// session base points apply.
type Choice struct {
	Text     string `json:"text"`
	Correct  bool   `json:"correct,omitempty"`
	Feedback string `json:"feedback,omitempty"`
	Points   int    `json:"points,omitempty"`
}

// Round is one scored decision point with multiple choices.
type Round struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Context string   `json:"context,omitempty"`
	Details []string `json:"details,omitempty"`
	Hint    string   `json:"hint,omitempty"`
	Choices []Choice `json:"choices"`
}

// RewardPolicy maps a finished run to an XP/badge pair. One declaration per
// scenario replaces a per-game completion handler.
type RewardPolicy struct {
	PointsPerCorrect int    `json:"pointsPerCorrect"`
	PerfectBonus     int    `json:"perfectBonus"`
	Badge            string `json:"badge,omitempty"`
	PerfectMessage   string `json:"perfectMessage,omitempty"`
	Message          string `json:"message,omitempty"`
	LockedMessage    string `json:"lockedMessage,omitempty"`
}

// Evaluate computes the reward for a result. The badge unlocks only on a
// perfect run.
func (p RewardPolicy) Evaluate(result Result) Reward {
	xp := result.Correct * p.PointsPerCorrect
	if result.Perfect {
		xp += p.PerfectBonus
	}
	reward := Reward{XP: xp, Message: p.Message}
	if result.Perfect && p.Badge != "" {
		reward.Badge = p.Badge
		if p.PerfectMessage != "" {
			reward.Message = p.PerfectMessage
		}
	}
	return reward
}

// Scenario is a mini-game: an ordered round sequence plus its reward policy.
type Scenario struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Footer      string       `json:"footer,omitempty"`
	BasePoints  int          `json:"basePoints,omitempty"` // defaults to DefaultBasePoints
	ComboBonus  int          `json:"comboBonus,omitempty"` // defaults to DefaultComboBonus
	Rounds      []Round      `json:"rounds"`
	Policy      RewardPolicy `json:"policy"`
}

// HistoryEntry records one answered round inside a run.
type HistoryEntry struct {
	Round   string `json:"round"`
	Prompt  string `json:"prompt"`
	Choice  string `json:"choice"`
	Correct bool   `json:"correct"`
	Gained  int    `json:"gained"`
}

// Result is the immutable outcome of a finished run.
type Result struct {
	Score     int            `json:"score"`
	Correct   int            `json:"correct"`
	Total     int            `json:"total"`
	MaxStreak int            `json:"maxStreak"`
	History   []HistoryEntry `json:"history"`
	Perfect   bool           `json:"perfect"`
}

// Reward is the XP/badge outcome derived from a result. Locked marks a
// reward that could not be persisted because the player is anonymous.
type Reward struct {
	XP      int    `json:"xp"`
	Badge   string `json:"badge,omitempty"`
	Message string `json:"message,omitempty"`
	Locked  bool   `json:"locked,omitempty"`
}

// Identity is the authenticated player, or anonymous when UID is empty.
type Identity struct {
	UID  string
	Name string
}

// Anonymous reports whether the identity carries no signed-in user.
func (i Identity) Anonymous() bool { return i.UID == "" }

// MissionChoice is a selectable action inside a mission with its outcome.
type MissionChoice struct {
	Text     string `json:"text"`
	DeltaXP  int    `json:"deltaXp"`
	Feedback string `json:"feedback,omitempty"`
	Badge    string `json:"badge,omitempty"`
}

// Mission is a single standalone challenge (chat, quiz, interactive, dailyTip).
type Mission struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Summary  string          `json:"summary,omitempty"`
	Type     string          `json:"type"`
	Question string          `json:"question,omitempty"`
	Messages []string        `json:"messages,omitempty"`
	Tip      string          `json:"tip,omitempty"`
	Choices  []MissionChoice `json:"choices"`
}

// MissionOutcome summarizes one mission attempt for the caller.
type MissionOutcome struct {
	MissionID      string `json:"missionId"`
	Delta          int    `json:"delta"`
	XP             int    `json:"xp"`
	Badge          string `json:"badge,omitempty"`
	Feedback       string `json:"feedback,omitempty"`
	Success        bool   `json:"success"`
	Completed      bool   `json:"completed"`
	Locked         bool   `json:"locked,omitempty"`
	AlreadyCleared bool   `json:"alreadyCleared,omitempty"`
	SaveError      string `json:"saveError,omitempty"`
}

// Team is the shared XP aggregate a player's rewards mirror into.
type Team struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	XP         int       `json:"xp"`
	LastActive time.Time `json:"lastActive"`
}
