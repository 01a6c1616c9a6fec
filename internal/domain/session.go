package domain

// SessionDefaults are the constants a new session starts from.
type SessionDefaults struct {
	StartSlide     SlideID
	Balance        float64
	TotalSaved     float64
	TotalSpent     float64
	GoalAmount     float64
	CreditScore    int
	PaycheckAmount float64
}

func DefaultSessionDefaults() SessionDefaults {
	return SessionDefaults{
		StartSlide:     "game_intro",
		Balance:        5550,
		GoalAmount:     15000,
		CreditScore:    680,
		PaycheckAmount: 500,
	}
}

// GameState is the mutable state of one session: the traversal cursor, the
// ledger and the achievement registry.
type GameState struct {
	CurrentSlideID SlideID
	Phase          Phase
	Ledger
	GoalUnlocked   bool
	GoalActive     bool
	CreditVisible  bool
	PaycheckAmount float64
	Achievements   *Registry
}

func NewGameState(defaults SessionDefaults, achievements []AchievementEntry) *GameState {
	return &GameState{
		CurrentSlideID: defaults.StartSlide,
		Phase:          PhaseDialogue,
		Ledger: Ledger{
			Balance:    defaults.Balance,
			TotalSaved: defaults.TotalSaved,
			TotalSpent: defaults.TotalSpent,
			GoalAmount: defaults.GoalAmount,
			Score:      clampScore(defaults.CreditScore),
		},
		PaycheckAmount: defaults.PaycheckAmount,
		Achievements:   NewRegistry(achievements),
	}
}

// Metrics is what the metrics bar displays.
type Metrics struct {
	Balance             float64
	TotalSaved          float64
	GoalAmount          float64
	GoalProgressPercent int
	GoalActive          bool
	ScoreVisible        bool
	Score               int
	Hidden              bool
}

func (s *GameState) Metrics(hidden bool) Metrics {
	return Metrics{
		Balance:             s.Balance,
		TotalSaved:          s.TotalSaved,
		GoalAmount:          s.GoalAmount,
		GoalProgressPercent: s.GoalProgressPercent(),
		GoalActive:          s.GoalActive,
		ScoreVisible:        s.CreditVisible,
		Score:               s.Score,
		Hidden:              hidden,
	}
}

const (
	walletImageBeforeCredit = "/assets/slides/bank-account-old-cropped.png"
	walletImageWithCredit   = "/assets/slides/bank-account-new-cropped.png"
)

// WalletImage picks the bank account view; it changes once the credit card
// has been opened.
func (s *GameState) WalletImage() string {
	if s.CreditVisible {
		return walletImageWithCredit
	}
	return walletImageBeforeCredit
}
