package message

// Status is the position of a message in the relay state machine
type Status string

const (
	StatusSent            Status = "SENT"
	StatusExcluded        Status = "EXCLUDED"
	StatusAnchored        Status = "ANCHORED"
	StatusPending         Status = "PENDING"
	StatusClaimedSuccess  Status = "CLAIMED_SUCCESS"
	StatusClaimedReverted Status = "CLAIMED_REVERTED"
	StatusZeroFee         Status = "ZERO_FEE"
	StatusNonExecutable   Status = "NON_EXECUTABLE"
	StatusFeeUnderpriced  Status = "FEE_UNDERPRICED"
)

// TerminalStatuses are never left by the relay. They are the only ones the retention sweep deletes
var TerminalStatuses = []Status{
	StatusExcluded,
	StatusClaimedSuccess,
	StatusClaimedReverted,
	StatusZeroFee,
	StatusNonExecutable,
	StatusFeeUnderpriced,
}

// IsTerminal returns true if no processor moves a message out of s
func (s Status) IsTerminal() bool {
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusSent, StatusAnchored, StatusPending:
		return true
	}
	return s.IsTerminal()
}

func (s Status) String() string {
	return string(s)
}

// OnChainStatus is the claim status reported by the destination message service
type OnChainStatus uint8

const (
	OnChainStatusUnknown OnChainStatus = iota
	OnChainStatusClaimable
	OnChainStatusClaimed
)

func (s OnChainStatus) String() string {
	switch s {
	case OnChainStatusClaimable:
		return "CLAIMABLE"
	case OnChainStatusClaimed:
		return "CLAIMED"
	default:
		return "UNKNOWN"
	}
}
