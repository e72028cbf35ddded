package common

const (
	// L1_TO_L2 name to identify the pipeline claiming L1 messages on L2
	L1_TO_L2 = "l1-to-l2" //nolint:stylecheck
	// L2_TO_L1 name to identify the pipeline claiming L2 messages on L1
	L2_TO_L1 = "l2-to-l1" //nolint:stylecheck
	// CLEANER name to identify the retention sweep component
	CLEANER = "cleaner"
	// RPC name to identify the rpc component
	RPC = "rpc"
)

// AllComponents is the default value of the components flag
var AllComponents = []string{L1_TO_L2, L2_TO_L1, CLEANER, RPC}

// IsValidComponent reports whether name is a known component
func IsValidComponent(name string) bool {
	for _, c := range AllComponents {
		if c == name {
			return true
		}
	}
	return false
}
