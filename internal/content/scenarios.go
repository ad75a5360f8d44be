// Package content holds the static scenario and mission packs. This is
// authoring data, not a protocol: entries are hard-coded and served through
// the repository layer.
package content

import "scamslayer-service/internal/domain"

// Scenarios returns the built-in mini-game packs keyed by scenario ID.
func Scenarios() map[string]domain.Scenario {
	packs := []domain.Scenario{
		jobWatch(),
		callShield(),
		hypeBuster(),
		parcelPhish(),
		passwordForge(),
		profileLock(),
		romanceRedFlags(),
		dealDetective(),
	}
	out := make(map[string]domain.Scenario, len(packs))
	for _, sc := range packs {
		out[sc.ID] = sc
	}
	return out
}

func jobWatch() domain.Scenario {
	return domain.Scenario{
		ID:          "job-watch",
		Title:       "Job Watch",
		Description: "Filter legit offers from deposit scams, script interviews, and data grabs.",
		Footer:      "Cross-check recruiters on LinkedIn, never pay joining fees, and use official portals only.",
		Policy: domain.RewardPolicy{
			PointsPerCorrect: 25,
			PerfectBonus:     35,
			Badge:            "Job Watch",
			PerfectMessage:   "No fake HR slips past you.",
			Message:          "Keep scanning LinkedIn and email headers carefully.",
			LockedMessage:    "Recruitment radar sharp! Sign in to keep your Job Watch streak next time.",
		},
		Rounds: []domain.Round{
			{
				ID:     "jobwatch-deposit",
				Prompt: "Recruiter email: 'Congratulations! Pay ₹2,999 security deposit today and join tomorrow.'",
				Choices: []domain.Choice{
					{Text: "Pay deposit quickly to lock role", Feedback: "Legit employers never ask for deposits."},
					{Text: "Ask for official offer letter sent from company domain", Correct: true, Feedback: "Verify via company domains, not free mail IDs."},
					{Text: "Share PAN + bank login for verification", Feedback: "Never share sensitive info pre-offer."},
				},
			},
			{
				ID:     "jobwatch-telegram",
				Prompt: "'HR' wants to interview you over Telegram with questions copy-pasted from Google forms.",
				Choices: []domain.Choice{
					{Text: "Proceed; remote interviews are now normal", Feedback: "No official email, no portal? Major red flag."},
					{Text: "Ask for video interview plus LinkedIn connection", Feedback: "Still risky without company verification."},
					{Text: "Decline and report the profile", Correct: true, Feedback: "Report fake recruiters and alert peers."},
				},
			},
			{
				ID:     "jobwatch-offer",
				Prompt: "You finish a legit interview. What's a safe next step before accepting?",
				Choices: []domain.Choice{
					{Text: "Sign immediately, no questions", Feedback: "Check compensation + offer terms first."},
					{Text: "Verify offer letter format, company address, and HR contact", Correct: true, Feedback: "Always validate details before resigning current role."},
					{Text: "Share bank login for payroll setup", Feedback: "Employers never need your login credentials."},
				},
			},
		},
	}
}

func callShield() domain.Scenario {
	return domain.Scenario{
		ID:          "call-shield",
		Title:       "Call Shield",
		Description: "Intercept voice-phishing scripts, keep your OTPs secret, and slam the door on remote-access attacks.",
		Footer:      "Reminder: banks never ask for OTPs, card PINs, or remote access on calls.",
		Policy: domain.RewardPolicy{
			PointsPerCorrect: 30,
			PerfectBonus:     40,
			Badge:            "Call Shield",
			PerfectMessage:   "Unbreakable call defense.",
			Message:          "Bank helplines over unknown callers every time.",
			LockedMessage:    "Strong defense! Sign in so your Call Shield badge sticks next time.",
		},
		Rounds: []domain.Round{
			{
				ID:     "callshield-intro",
				Prompt: "Unknown number: 'Sir, this is the bank. Your account will freeze in 5 minutes unless you read the OTP we just sent.'",
				Choices: []domain.Choice{
					{Text: "Share the OTP to be safe", Feedback: "Never share OTPs. That's a direct takeover."},
					{Text: "Ask for employee ID and say you'll call back via the official number", Correct: true, Feedback: "Great. Break the scammer's script and call the bank yourself."},
					{Text: "Install the support app they sent", Feedback: "Remote-control apps give attackers full access."},
				},
			},
			{
				ID:     "callshield-remote",
				Prompt: "The caller insists you install an APK to 'verify KYC'. What now?",
				Choices: []domain.Choice{
					{Text: "Download and follow instructions quickly", Feedback: "Malicious APK = instant phone compromise."},
					{Text: "Hang up, uninstall unknown apps, and report inside the bank app", Correct: true, Feedback: "Disconnect, clean up, and report in official channels."},
					{Text: "Keep chatting to learn more", Feedback: "They'll keep manipulating while recording your info."},
				},
			},
			{
				ID:     "callshield-escalate",
				Prompt: "Minutes later you get the real bank's SMS about suspicious activity. Best follow-up?",
				Choices: []domain.Choice{
					{Text: "Ignore; it must be spam", Feedback: "Verify alerts by calling the official helpline."},
					{Text: "Call the bank via the app and freeze the card if needed", Correct: true, Feedback: "Control the channel. Use in-app helplines or official numbers."},
					{Text: "Reply to SMS with details", Feedback: "Never respond to random SMS links."},
				},
			},
		},
	}
}

func hypeBuster() domain.Scenario {
	return domain.Scenario{
		ID:          "invest-scam",
		Title:       "Hype Buster",
		Description: "Spot Ponzi pitches, reject fake IPO fast-tracks, and lock your money behind solid research.",
		Footer:      "Check SEBI registrations, avoid guaranteed returns, and automate diversified investing.",
		Policy: domain.RewardPolicy{
			PointsPerCorrect: 30,
			PerfectBonus:     50,
			Badge:            "Hype Buster",
			PerfectMessage:   "You nuked every hype trap.",
			Message:          "Smart capital stays with regulated, diversified plans.",
			LockedMessage:    "Market pro! Sign in next run so XP & badges persist.",
		},
		Rounds: []domain.Round{
			{
				ID:     "invest-hype",
				Prompt: "Telegram broadcast: 'Guaranteed 5x returns in 7 days if you join our premium crypto group today.'",
				Choices: []domain.Choice{
					{Text: "Stake immediately before the slots fill", Feedback: "'Guaranteed returns' is Ponzi language."},
					{Text: "Join group but invest only a little", Feedback: "Entry fees and pressure equals grift."},
					{Text: "Ignore, research via SEBI-registered platforms", Correct: true, Feedback: "Legit investments never guarantee outsized returns."},
				},
			},
			{
				ID:     "invest-kyc",
				Prompt: "An influencer DM says an IPO allotment is sure-shot if you wire ₹50k upfront for their 'KYC fast-track'.",
				Choices: []domain.Choice{
					{Text: "Wire money to lock the allotment", Feedback: "No third party can fast-track IPO KYC."},
					{Text: "Ask for SEBI registration number and verify", Correct: true, Feedback: "Check credentials on SEBI's website before trusting offers."},
					{Text: "Share PAN and Aadhaar to stay in queue", Feedback: "Never share full IDs over random DMs."},
				},
			},
			{
				ID:     "invest-diversify",
				Prompt: "Your friend pushes a referral app promising daily 3% interest and 'locked wallet'.",
				Choices: []domain.Choice{
					{Text: "Deposit to test with small amount", Feedback: "High daily interest is the classic Ponzi hook."},
					{Text: "Report app in app store + guide friend on risks", Correct: true, Feedback: "Warn others and report suspicious apps."},
					{Text: "Keep money in app but monitor closely", Feedback: "You'll be trapped when withdrawals freeze."},
				},
			},
			{
				ID:     "invest-plan",
				Prompt: "You want to invest sign-up bonus wisely. What's the best play?",
				Choices: []domain.Choice{
					{Text: "Chase the latest hype coin", Feedback: "Speculation without research is gambling."},
					{Text: "Set up SIP in diversified index funds", Correct: true, Feedback: "Diversification + regulated brokers beats FOMO."},
					{Text: "Keep cash idle until the next 'tip' shows up", Feedback: "Idle cash loses value; follow a plan."},
				},
			},
		},
	}
}

func parcelPhish() domain.Scenario {
	return domain.Scenario{
		ID:          "parcel-phish",
		Title:       "Parcel Phish",
		Description: "Outsmart fake courier texts, OTP grabs, and customs fee scams before they grab your wallet.",
		Footer:      "Couriers never charge through random links. Track orders inside their official apps or websites.",
		Policy: domain.RewardPolicy{
			PointsPerCorrect: 25,
			PerfectBonus:     30,
			Badge:            "Parcel Patroller",
			PerfectMessage:   "No courier scam can sneak through.",
			Message:          "Stay in official tracking apps to stay safe.",
			LockedMessage:    "Delivery defense on point! Sign in so XP sticks next run.",
		},
		Rounds: []domain.Round{
			{
				ID:     "parcel-link",
				Prompt: "SMS: 'DTDC: your parcel is held. Pay ₹49 here: bit.ly/dtdc-pay to release today.'",
				Choices: []domain.Choice{
					{Text: "Tap link and pay the small fee", Feedback: "Shortened links + fee = classic phishing trick."},
					{Text: "Ignore, track parcel from the courier's official app", Correct: true, Feedback: "Always verify deliveries inside the official portal."},
					{Text: "Call the number in SMS", Feedback: "Numbers in scam SMS route directly to fraudsters."},
				},
			},
			{
				ID:     "parcel-otp",
				Prompt: "Fake delivery agent calls asking for the OTP you received to 'confirm address'.",
				Choices: []domain.Choice{
					{Text: "Share OTP so parcel arrives", Feedback: "OTP lets them hijack your accounts."},
					{Text: "Refuse, hang up, and contact support via official app", Correct: true, Feedback: "OTP is only for your use inside official apps."},
					{Text: "Text them the OTP but change one digit", Feedback: "Any OTP exposure is game over."},
				},
			},
			{
				ID:     "parcel-form",
				Prompt: "Email: 'Customs: fill out attached form with PAN + card details to release imported item.'",
				Choices: []domain.Choice{
					{Text: "Download form and submit details", Feedback: "Attachments from random senders = malware."},
					{Text: "Forward the email to report@indiapost.gov.in and delete", Correct: true, Feedback: "Report phishing and handle duties from official portals only."},
					{Text: "Pay via UPI ID mentioned", Feedback: "Fraud UPI IDs collect instant payments."},
				},
			},
		},
	}
}

func passwordForge() domain.Scenario {
	return domain.Scenario{
		ID:          "password-forge",
		Title:       "Password Forge",
		Description: "Craft elite passwords, rotate after breaches, and layer in MFA to stay unhackable.",
		Footer:      "Use a password manager to generate unique credentials and enable passkeys wherever possible.",
		Policy: domain.RewardPolicy{
			PointsPerCorrect: 25,
			PerfectBonus:     35,
			Badge:            "Password Blacksmith",
			PerfectMessage:   "Perfect forge! Vault upgraded.",
			Message:          "Password game on point - keep the streak alive.",
			LockedMessage:    "Solid forging! Sign in next run so the XP and badge stick to your profile.",
		},
		Rounds: []domain.Round{
			{
				ID:      "forge-anchor",
				Prompt:  "You're setting up a FinTech wallet holding crypto and savings. Which password keeps attackers out?",
				Details: []string{"Must survive credential dumps", "Should be unique and long"},
				Choices: []domain.Choice{
					{Text: "Password@123", Feedback: "Predictable pattern. Attackers try these first."},
					{Text: "G@nesha2024", Feedback: "Still guessable - based on personal info."},
					{Text: "Glass-Mango!39River", Correct: true, Feedback: "Long, random mix with symbols and words."},
					{Text: "wallet$$$", Feedback: "Too short and repetitive."},
				},
			},
			{
				ID:     "forge-breach",
				Prompt: "An email says one of your old passwords leaked. What is the safest immediate response?",
				Choices: []domain.Choice{
					{Text: "Reuse the same password but add !23", Feedback: "Patchwork reuse keeps you exposed."},
					{Text: "Change the password everywhere and enable 2FA", Correct: true, Feedback: "Rotate to unique passwords and add a second factor."},
					{Text: "Ignore; breaches are fake", Feedback: "Assume breach notifications are serious. Verify on HaveIBeenPwned."},
				},
			},
			{
				ID:     "forge-sharing",
				Prompt: "Your flatmate wants the OTT login. What's the safest play?",
				Choices: []domain.Choice{
					{Text: "Share current password via chat", Feedback: "Never send passwords in clear text."},
					{Text: "Create a new unique password, store in manager, and add them as a viewer", Correct: true, Feedback: "Use password manager sharing or separate profiles."},
					{Text: "Set password to their birthday so they remember", Feedback: "Dates are easy to brute-force."},
				},
			},
			{
				ID:     "forge-mfa",
				Prompt: "You just hardened your main email password. Which additional control makes it a fortress?",
				Choices: []domain.Choice{
					{Text: "Enable SMS OTP only", Feedback: "Better than nothing, but SIM swaps exist."},
					{Text: "Turn on authenticator app / passkeys", Correct: true, Feedback: "App-based MFA or passkeys stop most takeovers."},
					{Text: "Rely on security questions", Feedback: "Security answers are easy to guess from social media."},
				},
			},
		},
	}
}

func profileLock() domain.Scenario {
	return domain.Scenario{
		ID:          "profile-lock",
		Title:       "Profile Lock",
		Description: "Lock down social accounts, enable resilient MFA, and hide the breadcrumbs scammers love.",
		Footer:      "Review privacy settings each quarter and revoke third-party access you no longer use.",
		Policy: domain.RewardPolicy{
			PointsPerCorrect: 20,
			PerfectBonus:     25,
			Badge:            "Profile Guardian",
			PerfectMessage:   "Profile fully locked.",
			Message:          "Keep reviewing privacy + app access regularly.",
			LockedMessage:    "Social fortress built! Sign in so XP sticks next run.",
		},
		Rounds: []domain.Round{
			{
				ID:     "profile-privacy",
				Prompt: "You just hit 1k followers. Which privacy reset keeps scammers away?",
				Choices: []domain.Choice{
					{Text: "Leave everything public", Feedback: "Public DMs and posts invite phishing attempts."},
					{Text: "Friends-only posts, but DMs open", Feedback: "Scammers still slide into open DMs."},
					{Text: "Friends-only posts, restrict DMs to followers", Correct: true, Feedback: "Limit who can message you to reduce attack surface."},
				},
			},
			{
				ID:     "profile-2fa",
				Prompt: "A phishing wave hits your friend group. Secure your account now.",
				Choices: []domain.Choice{
					{Text: "Enable email-based 2FA", Feedback: "Email-only MFA is better than nothing but can be compromised."},
					{Text: "Enable app-based 2FA and remove old sessions", Correct: true, Feedback: "App-based 2FA plus device review stops most hijacks."},
					{Text: "Change password to a simpler one to remember", Feedback: "Strong unique password + MFA is required."},
				},
			},
			{
				ID:     "profile-details",
				Prompt: "Brands keep spamming after scraping your profile. What now?",
				Choices: []domain.Choice{
					{Text: "Hide phone/email, review third-party app access", Correct: true, Feedback: "Limit data exposure and revoke shady app permissions."},
					{Text: "Post a status asking scammers to stop", Feedback: "Broadcasting invites more attacks."},
					{Text: "Share more personal info to look authentic", Feedback: "Oversharing fuels social engineering."},
				},
			},
		},
	}
}

func romanceRedFlags() domain.Scenario {
	return domain.Scenario{
		ID:          "romance-red-flags",
		Title:       "Romance Red Flags",
		Description: "Recognise emotional manipulation, spot pig-butchering plays, and keep your heart (and money) safe.",
		Footer:      "Protect personal data, refuse pressure for money, and report abusive profiles.",
		Policy: domain.RewardPolicy{
			PointsPerCorrect: 25,
			PerfectBonus:     30,
			Badge:            "Heart Guard",
			PerfectMessage:   "Romance scammers can't pierce your armor.",
			Message:          "Stay cautious with digital relationships.",
			LockedMessage:    "Heart shielded! Sign in to keep your badge next time.",
		},
		Rounds: []domain.Round{
			{
				ID:     "romance-giftcards",
				Prompt: "Online match (2 weeks old): 'Babe my card got blocked, send 3 Amazon gift cards please.'",
				Choices: []domain.Choice{
					{Text: "Buy and send gift card codes", Feedback: "Gift card asks are a hallmark of romance scams."},
					{Text: "Offer a small loan", Feedback: "Any money sent will vanish."},
					{Text: "Refuse, block, and report the profile", Correct: true, Feedback: "Protect your wallet by cutting contact immediately."},
				},
			},
			{
				ID:     "romance-invest",
				Prompt: "They invite you to 'invest together' on a crypto site only they recommend.",
				Choices: []domain.Choice{
					{Text: "Invest together to build trust", Feedback: "Pig-butchering scams use fake investment dashboards."},
					{Text: "Ask friends for their opinion", Feedback: "Scammers will isolate you from advice."},
					{Text: "Decline, do not send funds, and screenshot as evidence", Correct: true, Feedback: "Collect evidence and stop responding."},
				},
			},
			{
				ID:     "romance-id",
				Prompt: "They avoid video calls and request copies of your ID 'to book tickets'.",
				Choices: []domain.Choice{
					{Text: "Share ID to show trust", Feedback: "Identity theft risk skyrockets."},
					{Text: "Suggest meeting in public place first", Feedback: "Scammers rarely agree to meet."},
					{Text: "Refuse, secure accounts, and warn platform", Correct: true, Feedback: "Cut ties and secure your accounts."},
				},
			},
		},
	}
}

func dealDetective() domain.Scenario {
	return domain.Scenario{
		ID:          "deal-detective",
		Title:       "Deal Detective",
		Description: "Hunt down fake marketplace listings, dodgy payment requests, and bogus tracking.",
		Footer:      "Never leave platform escrow, cross-check tracking, and file disputes at the first red flag.",
		Policy: domain.RewardPolicy{
			PointsPerCorrect: 25,
			PerfectBonus:     35,
			Badge:            "Deal Detective",
			PerfectMessage:   "Marketplace fraudsters caught in 4K.",
			Message:          "Keep deals inside verified platforms.",
			LockedMessage:    "Deal detective instincts! Sign in to log XP next run.",
		},
		Rounds: []domain.Round{
			{
				ID:     "deal-form",
				Prompt: "Instagram ad: 'Latest iPhone for ₹14,999. Pay now via Google Form checkout.'",
				Choices: []domain.Choice{
					{Text: "Fill the form and pay to reserve", Feedback: "External forms with upfront fee scream scam."},
					{Text: "Verify seller history and insist on platform checkout", Correct: true, Feedback: "Protected payments + ratings help avoid fraud."},
					{Text: "DM seller for direct bank transfer discount", Feedback: "Bank transfers remove buyer protection."},
				},
			},
			{
				ID:     "deal-escrow",
				Prompt: "Seller says, 'Pay 30% advance outside the marketplace to skip fees.'",
				Choices: []domain.Choice{
					{Text: "Agree and send advance", Feedback: "No refunds when they disappear."},
					{Text: "Offer cash on delivery", Feedback: "COD may still be risky without official listing."},
					{Text: "Stay within marketplace escrow / payment gateway", Correct: true, Feedback: "Stay on-platform to keep dispute rights."},
				},
			},
			{
				ID:     "deal-tracking",
				Prompt: "After payment, seller sends tracking screenshot from unknown courier with .xyz domain.",
				Choices: []domain.Choice{
					{Text: "Trust screenshot and wait", Feedback: "Fake tracking keeps you quiet until dispute window closes."},
					{Text: "Cross-check order status inside platform and raise ticket", Correct: true, Feedback: "If tracking isn't verified, escalate immediately."},
					{Text: "Message courier on WhatsApp", Feedback: "Fraudsters control fake support numbers."},
				},
			},
		},
	}
}
