package domain

import "time"

// keep only the tail of a run history on the profile
const historyKeep = 5

// GameStats is the per-scenario aggregate stored on a profile.
type GameStats struct {
	GameName     string         `json:"gameName,omitempty"`
	PlayCount    int            `json:"playCount"`
	LastXP       int            `json:"lastXp"`
	LastScore    int            `json:"lastScore"`
	BestScore    int            `json:"bestScore"`
	LastStreak   int            `json:"lastStreak"`
	BestStreak   int            `json:"bestStreak"`
	LastCorrect  int            `json:"lastCorrect"`
	LastTotal    int            `json:"lastTotal"`
	LastAccuracy int            `json:"lastAccuracy"`
	PerfectRuns  int            `json:"perfectRuns"`
	LastHistory  []HistoryEntry `json:"lastHistory,omitempty"`
	LastPlayedAt time.Time      `json:"lastPlayedAt"`
}

// MissionStats is the per-mission aggregate stored on a profile.
type MissionStats struct {
	MissionName   string    `json:"missionName,omitempty"`
	MissionType   string    `json:"missionType,omitempty"`
	AttemptCount  int       `json:"attemptCount"`
	SuccessCount  int       `json:"successCount"`
	LastDelta     int       `json:"lastDelta"`
	LastXP        int       `json:"lastXp"`
	BestXP        int       `json:"bestXp"`
	LastBadge     string    `json:"lastBadge,omitempty"`
	LastFeedback  string    `json:"lastFeedback,omitempty"`
	LastSuccess   bool      `json:"lastSuccess"`
	Completed     bool      `json:"completed"`
	LastAttemptAt time.Time `json:"lastAttemptAt"`
}

// Profile is the persisted per-user ledger: total XP, badge set, and
// per-game/per-mission aggregates. Mutated only through ApplyReward.
type Profile struct {
	UID               string                  `json:"uid"`
	Name              string                  `json:"name"`
	XP                int                     `json:"xp"`
	Badges            []string                `json:"badges"`
	MissionsCompleted []string                `json:"missionsCompleted"`
	GameStats         map[string]GameStats    `json:"gameStats,omitempty"`
	MissionStats      map[string]MissionStats `json:"missionStats,omitempty"`
	TeamID            string                  `json:"teamId,omitempty"`
	CreatedAt         time.Time               `json:"createdAt"`
	LastPlayed        time.Time               `json:"lastPlayed"`
}

// NewProfile returns a profile with sensible defaults for a first write.
func NewProfile(uid, name string, now time.Time) Profile {
	return Profile{
		UID:               uid,
		Name:              name,
		Badges:            []string{},
		MissionsCompleted: []string{},
		CreatedAt:         now,
	}
}

// GameResult carries per-run metadata for one reward event.
type GameResult struct {
	ID      string         `json:"id"`
	Name    string         `json:"name,omitempty"`
	Score   int            `json:"score"`
	Streak  int            `json:"streak"`
	Correct int            `json:"correct"`
	Total   int            `json:"total"`
	Perfect bool           `json:"perfect"`
	XP      int            `json:"xp"`
	History []HistoryEntry `json:"history,omitempty"`
}

// MissionResult carries per-attempt metadata for one reward event.
type MissionResult struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Type      string `json:"type,omitempty"`
	Delta     int    `json:"delta"`
	XP        int    `json:"xp"`
	Badge     string `json:"badge,omitempty"`
	Feedback  string `json:"feedback,omitempty"`
	Success   bool   `json:"success"`
	Completed bool   `json:"completed"`
}

// RewardEvent is one settlement against a profile: an XP delta, an optional
// badge, and optional game or mission metadata.
type RewardEvent struct {
	Delta   int
	Badge   string
	Game    *GameResult
	Mission *MissionResult
}

// ApplyReward merges one reward event into the profile. Total XP floors at
// zero; badges and completed missions keep set semantics; best-* fields move
// only on strict improvement. Callers must hold whatever lock guards the
// stored record so the comparisons are atomic.
func (p *Profile) ApplyReward(ev RewardEvent, now time.Time) {
	p.XP += ev.Delta
	if p.XP < 0 {
		p.XP = 0
	}
	p.LastPlayed = now
	if ev.Badge != "" {
		p.Badges = appendUnique(p.Badges, ev.Badge)
	}

	if g := ev.Game; g != nil && g.ID != "" {
		if p.GameStats == nil {
			p.GameStats = make(map[string]GameStats)
		}
		stats := p.GameStats[g.ID]
		if g.Name != "" {
			stats.GameName = g.Name
		} else if stats.GameName == "" {
			stats.GameName = g.ID
		}
		stats.PlayCount++
		stats.LastPlayedAt = now
		stats.LastXP = g.XP
		stats.LastScore = g.Score
		stats.LastStreak = g.Streak
		stats.LastCorrect = g.Correct
		stats.LastTotal = g.Total
		if g.Total > 0 {
			stats.LastAccuracy = int(float64(g.Correct)/float64(g.Total)*100 + 0.5)
		}
		if g.Score > stats.BestScore {
			stats.BestScore = g.Score
		}
		if g.Streak > stats.BestStreak {
			stats.BestStreak = g.Streak
		}
		if g.Perfect {
			stats.PerfectRuns++
		}
		if len(g.History) > 0 {
			tail := g.History
			if len(tail) > historyKeep {
				tail = tail[len(tail)-historyKeep:]
			}
			stats.LastHistory = append([]HistoryEntry(nil), tail...)
		}
		p.GameStats[g.ID] = stats
	}

	if m := ev.Mission; m != nil && m.ID != "" {
		if p.MissionStats == nil {
			p.MissionStats = make(map[string]MissionStats)
		}
		stats := p.MissionStats[m.ID]
		if m.Name != "" {
			stats.MissionName = m.Name
		} else if stats.MissionName == "" {
			stats.MissionName = m.ID
		}
		if m.Type != "" {
			stats.MissionType = m.Type
		}
		stats.AttemptCount++
		stats.LastAttemptAt = now
		stats.LastDelta = m.Delta
		stats.LastXP = m.XP
		if m.XP > stats.BestXP {
			stats.BestXP = m.XP
		}
		if m.Badge != "" {
			stats.LastBadge = m.Badge
		}
		if m.Feedback != "" {
			stats.LastFeedback = m.Feedback
		}
		stats.LastSuccess = m.Success
		if m.Success {
			stats.SuccessCount++
		}
		if m.Completed {
			stats.Completed = true
			p.MissionsCompleted = appendUnique(p.MissionsCompleted, m.ID)
		}
		p.MissionStats[m.ID] = stats
	}
}

// HasCompletedMission reports whether the mission is already cleared.
func (p *Profile) HasCompletedMission(missionID string) bool {
	if stats, ok := p.MissionStats[missionID]; ok && stats.Completed {
		return true
	}
	for _, id := range p.MissionsCompleted {
		if id == missionID {
			return true
		}
	}
	return false
}

func appendUnique(set []string, value string) []string {
	for _, existing := range set {
		if existing == value {
			return set
		}
	}
	return append(set, value)
}
