package engine

import "errors"

// Code is the machine-readable kind of a rule violation.
type Code string

const (
	CodeNoGame            Code = "NO_GAME"
	CodeMatchOver         Code = "MATCH_OVER"
	CodeRoundOver         Code = "ROUND_OVER"
	CodeRoundInProgress   Code = "ROUND_IN_PROGRESS"
	CodeNotYourTurn       Code = "NOT_YOUR_TURN"
	CodeUnknownPlayer     Code = "UNKNOWN_PLAYER"
	CodeTileNotInHand     Code = "TILE_NOT_IN_HAND"
	CodeTrainNotPlayable  Code = "TRAIN_NOT_PLAYABLE"
	CodeTileMismatch      Code = "TILE_MISMATCH"
	CodeOneMovePerTurn    Code = "ONE_MOVE_PER_TURN"
	CodeBadTarget         Code = "BAD_TARGET"
	CodeBoneyardEmpty     Code = "BONEYARD_EMPTY"
	CodeAlreadyDrew       Code = "ALREADY_DREW"
	CodeMustPlay          Code = "MUST_PLAY"
	CodePassHasMove       Code = "PASS_HAS_MOVE"
	CodePassCanDraw       Code = "PASS_CAN_DRAW"
	CodeMustSatisfyDouble Code = "MUST_SATISFY_DOUBLE"
	CodeInvalidConfig     Code = "INVALID_CONFIG"
)

// Category groups codes the way callers usually branch on them.
type Category string

const (
	CategoryPhase    Category = "phase"
	CategoryTurn     Category = "turn"
	CategoryMove     Category = "move"
	CategoryResource Category = "resource"
	CategoryPass     Category = "pass"
	CategoryConfig   Category = "config"
)

func (c Code) Category() Category {
	switch c {
	case CodeNoGame, CodeMatchOver, CodeRoundOver, CodeRoundInProgress:
		return CategoryPhase
	case CodeNotYourTurn, CodeUnknownPlayer:
		return CategoryTurn
	case CodeTileNotInHand, CodeTrainNotPlayable, CodeTileMismatch, CodeOneMovePerTurn, CodeBadTarget:
		return CategoryMove
	case CodeBoneyardEmpty, CodeAlreadyDrew, CodeMustPlay:
		return CategoryResource
	case CodePassHasMove, CodePassCanDraw, CodeMustSatisfyDouble:
		return CategoryPass
	}
	return CategoryConfig
}

// RuleError is returned for every rejected request. The state is untouched
// whenever one is returned.
type RuleError struct {
	Code   Code
	Reason string
}

func newRuleError(code Code, reason string) *RuleError {
	return &RuleError{Code: code, Reason: reason}
}

func (e *RuleError) Error() string {
	if e.Reason == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Reason
}

// Is matches any RuleError with the same code, so the sentinels below work
// with errors.Is regardless of the reason text.
func (e *RuleError) Is(target error) bool {
	var other *RuleError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// CodeOf extracts the code of a RuleError anywhere in err's chain.
func CodeOf(err error) (Code, bool) {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Code, true
	}
	return "", false
}

var (
	ErrNoGame            = &RuleError{Code: CodeNoGame}
	ErrMatchOver         = &RuleError{Code: CodeMatchOver}
	ErrRoundOver         = &RuleError{Code: CodeRoundOver}
	ErrRoundInProgress   = &RuleError{Code: CodeRoundInProgress}
	ErrNotYourTurn       = &RuleError{Code: CodeNotYourTurn}
	ErrUnknownPlayer     = &RuleError{Code: CodeUnknownPlayer}
	ErrTileNotInHand     = &RuleError{Code: CodeTileNotInHand}
	ErrTrainNotPlayable  = &RuleError{Code: CodeTrainNotPlayable}
	ErrTileMismatch      = &RuleError{Code: CodeTileMismatch}
	ErrOneMovePerTurn    = &RuleError{Code: CodeOneMovePerTurn}
	ErrBadTarget         = &RuleError{Code: CodeBadTarget}
	ErrBoneyardEmpty     = &RuleError{Code: CodeBoneyardEmpty}
	ErrAlreadyDrew       = &RuleError{Code: CodeAlreadyDrew}
	ErrMustPlay          = &RuleError{Code: CodeMustPlay}
	ErrPassHasMove       = &RuleError{Code: CodePassHasMove}
	ErrPassCanDraw       = &RuleError{Code: CodePassCanDraw}
	ErrMustSatisfyDouble = &RuleError{Code: CodeMustSatisfyDouble}
	ErrInvalidConfig     = &RuleError{Code: CodeInvalidConfig}
)
