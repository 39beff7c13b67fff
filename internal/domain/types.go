package domain

// RangeConfig is the concrete value range resolved for a tier.
type RangeConfig struct {
	Tier       Tier   `json:"range_key"`
	Label      string `json:"range_label"`
	MinValue   int    `json:"min_value"`
	MaxValue   int    `json:"max_value"`
	DigitCount int    `json:"digits"`
}

// AbacusColumn is the display form of one digit on an abacus rod.
type AbacusColumn struct {
	UpperActive bool `json:"upper_active"`
	LowerCount  int  `json:"lower_active_count"`
}

// SequenceRequest is the input to a sequence generator. Values are expected
// to be validated already; generators clamp them again.
type SequenceRequest struct {
	Range    RangeConfig
	MaxSum   int
	MaxDigit int
	Count    int
}

// Sequence is a generated run of signed values.
type Sequence struct {
	Numbers []int
	Total   int
	MaxSum  int
	Range   RangeConfig
	// Fallback is set when the constrained search gave up and the values
	// came from the best-effort pass.
	Fallback bool
}

// SessionRequest carries the runtime parameters of a quick-math or
// flash-card session.
type SessionRequest struct {
	Tier     Tier
	MaxDigit int
	Count    int
	Speed    float64
	Seed     int64
}

// Settings echoes the parameters a session was built with.
type Settings struct {
	Tier     Tier    `json:"range_key"`
	Label    string  `json:"range_label"`
	Count    int     `json:"num_examples"`
	Speed    float64 `json:"speed"`
	MaxDigit int     `json:"max_digit"`
	MaxSum   int     `json:"max_sum"`
}

// NumberItem is one shown value, indexed from 1.
type NumberItem struct {
	Index int `json:"index"`
	Value int `json:"value"`
}

// Session is a quick-math drill.
type Session struct {
	ID       string       `json:"id"`
	Seed     int64        `json:"seed"`
	Settings Settings     `json:"settings"`
	Numbers  []NumberItem `json:"numbers"`
	Total    int          `json:"total"`
}

// Card is one flash card; Columns show the magnitude of Value.
type Card struct {
	Index   int            `json:"index"`
	Value   int            `json:"value"`
	Columns []AbacusColumn `json:"columns"`
}

// FlashSession is an abacus flash-card drill.
type FlashSession struct {
	ID       string   `json:"id"`
	Seed     int64    `json:"seed"`
	Settings Settings `json:"settings"`
	Cards    []Card   `json:"cards"`
	Numbers  []int    `json:"numbers"`
	Total    int      `json:"total"`
	Speed    float64  `json:"speed"`
}

// BrothersRequest configures a five-complement drill.
type BrothersRequest struct {
	Brother int
	Tier    Tier
	Count   int
	Speed   float64
	Seed    int64
}

// BrotherStep is a value split into the bead moves a student performs.
type BrotherStep struct {
	Value       int   `json:"value"`
	Steps       []int `json:"steps"`
	UsedBrother bool  `json:"used_brother"`
}

// BrothersQuestion is one shown value of a brothers drill.
type BrothersQuestion struct {
	Index   int    `json:"index"`
	Display string `json:"display"`
	BrotherStep
}

// BrothersSession is a five-complement drill.
type BrothersSession struct {
	ID        string             `json:"id"`
	Seed      int64              `json:"seed"`
	Brother   int                `json:"brother"`
	Tier      Tier               `json:"range_key"`
	Label     string             `json:"range_label"`
	Speed     float64            `json:"speed"`
	Questions []BrothersQuestion `json:"questions"`
	Total     int                `json:"total"`
}

// SchulteGrid is a shuffled 1..size² table.
type SchulteGrid struct {
	Seed    int64 `json:"seed"`
	Size    int   `json:"grid_size"`
	Numbers []int `json:"numbers"`
}

// StroopColor is a palette entry.
type StroopColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// StroopRound is one word shown in some ink.
type StroopRound struct {
	ID            int      `json:"id"`
	Word          string   `json:"word"`
	InkColor      string   `json:"ink_color"`
	CorrectAnswer string   `json:"correct_answer"`
	Choices       []string `json:"choices"`
}

// StroopSession is a full Stroop test.
type StroopSession struct {
	Seed               int64         `json:"seed"`
	Level              StroopLevel   `json:"level"`
	TotalRounds        int           `json:"total_rounds"`
	RecommendedSeconds int           `json:"recommended_seconds"`
	Colors             []StroopColor `json:"available_colors"`
	Rounds             []StroopRound `json:"rounds"`
}

// FieldError names a request field that failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
