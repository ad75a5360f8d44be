package content

import "scamslayer-service/internal/domain"

// Missions returns the built-in mission set keyed by mission ID.
func Missions() map[string]domain.Mission {
	defs := []domain.Mission{
		{
			ID:      "chat-bank-alert",
			Title:   "Phishy Bank Alert",
			Summary: "Decode a suspicious banking message before it drains your wallet.",
			Type:    "chat",
			Messages: []string{
				"Yo, your bank: urgent! Tap link to verify now 🔗",
				"Link: scam-bank.example",
			},
			Choices: []domain.MissionChoice{
				{Text: "Click the link", DeltaXP: -20, Feedback: "Bruh 💀 that was a scam!", Badge: "Careful Clicker"},
				{Text: "Check sender + open official app", DeltaXP: 30, Feedback: "W move 🧠 Verified like a legend.", Badge: "Link Detective"},
			},
		},
		{
			ID:       "quiz-otp-panic",
			Title:    "OTP Panic Button",
			Summary:  "A friend wants your OTP. Stay calm and choose wisely.",
			Type:     "quiz",
			Question: "Your friend urgently needs your OTP for a payment. What's the safe move?",
			Tip:      "One-Time Passwords (OTPs) should NEVER be shared, even with friends or family.",
			Choices: []domain.MissionChoice{
				{Text: "Share the OTP - it's my friend!", DeltaXP: -30, Feedback: "Nah fam 🚫 OTPs are like toothbrushes - never share!", Badge: "OTP Guardian"},
				{Text: "Call friend to verify + block number", DeltaXP: 40, Feedback: "Gigachad energy 💪 Real friends never ask for OTPs.", Badge: "Friend or Foe"},
			},
		},
		{
			ID:      "interactive-upi",
			Title:   "UPI Scam Detector",
			Summary: "Spot the red flags in a bogus UPI payment request.",
			Type:    "interactive",
			Tip:     "Legitimate contests don't ask you to pay or share sensitive info to claim prizes.",
			Choices: []domain.MissionChoice{
				{Text: "Accept the money quick!", DeltaXP: -25, Feedback: "They almost cooked you 💀 Free money is usually a trap!", Badge: "UPI Warrior"},
				{Text: "Report as fraud + block", DeltaXP: 35, Feedback: "Clutch ⚡ You spotted the scam pattern.", Badge: "Scam Spotter"},
			},
		},
		{
			ID:      "dailyTip-2fa",
			Title:   "Double-Lock Your Accounts",
			Summary: "Quick win: enable 2FA for an easy XP boost.",
			Type:    "dailyTip",
			Choices: []domain.MissionChoice{
				{Text: "Enable 2FA now", DeltaXP: 15, Feedback: "It's like having a bouncer for your digital life 🔐", Badge: "Security Pro"},
			},
		},
		{
			ID:      "chat-job-offer",
			Title:   "Dream Job or Scam?",
			Summary: "A stranger offers you double pay if you pay a deposit. What do you do?",
			Type:    "chat",
			Messages: []string{
				"Congrats! We loved your profile. Pay ₹2,999 security deposit to join tomorrow.",
				"Send UPI to hiring-fast-pay@upi.",
			},
			Choices: []domain.MissionChoice{
				{Text: "Pay deposit to secure job", DeltaXP: -35, Feedback: "Oof 😬 legit companies never charge joining fees."},
				{Text: "Ask for offer letter and company email", DeltaXP: 40, Feedback: "Clutch! Verify domains + never pay deposits.", Badge: "Job Watch"},
			},
		},
		{
			ID:       "quiz-crypto-hype",
			Title:    "Crypto Hype Check",
			Summary:  "Inflated promises everywhere - pick the safe investment move.",
			Type:     "quiz",
			Question: "Telegram group promises 5x returns in 7 days if you join now. What's the play?",
			Tip:      "Guaranteed returns = guaranteed scam.",
			Choices: []domain.MissionChoice{
				{Text: "Join ASAP, stake everything", DeltaXP: -40, Feedback: "That's a Ponzi invite 😵"},
				{Text: "Ignore hype, check SEBI-registered options", DeltaXP: 45, Feedback: "Smart call! Research legit instruments.", Badge: "Hype Buster"},
			},
		},
		{
			ID:      "interactive-marketplace",
			Title:   "Marketplace Showdown",
			Summary: "Seller wants you to pay off-platform. Decide fast.",
			Type:    "interactive",
			Tip:     "Keep chats + payments on the official app to stay covered.",
			Choices: []domain.MissionChoice{
				{Text: "Pay via bank transfer for a discount", DeltaXP: -30, Feedback: "Transfer = no buyer protection. Rip 😓"},
				{Text: "Use COD or platform escrow", DeltaXP: 35, Feedback: "Safe move! Stay within official checkout.", Badge: "Deal Detective"},
			},
		},
		{
			ID:      "dailyTip-password",
			Title:   "Password Glow-Up",
			Summary: "Upgrade one weak password with a manager and earn XP.",
			Type:    "dailyTip",
			Choices: []domain.MissionChoice{
				{Text: "Open password manager", DeltaXP: 20, Feedback: "Swap one reused password for a strong unique one.", Badge: "Password Blacksmith"},
			},
		},
		{
			ID:      "chat-romance-wire",
			Title:   "Romance Red Flags",
			Summary: "A 'partner' abroad keeps asking for gift cards.",
			Type:    "chat",
			Messages: []string{
				"Babe, my card got blocked. Can you send 3 Amazon gift cards? I'll pay back soon.",
				"Please hurry, I need it tonight 😢",
			},
			Choices: []domain.MissionChoice{
				{Text: "Buy the cards to help", DeltaXP: -40, Feedback: "Classic romance scam. Protect the bag!"},
				{Text: "Refuse + block/report profile", DeltaXP: 45, Feedback: "Heart Guard mode activated ❤️", Badge: "Heart Guard"},
			},
		},
	}
	out := make(map[string]domain.Mission, len(defs))
	for _, m := range defs {
		out[m.ID] = m
	}
	return out
}
