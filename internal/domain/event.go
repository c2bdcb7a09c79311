package domain

import "fmt"

// LifecycleEvent is one of the five transition requests the billing host can
// send. The host addresses them by its own wire names; ParseEvent maps those
// once at the boundary so everything past it works with the enum.
type LifecycleEvent string

const (
	EventProvision LifecycleEvent = "provision"
	EventSuspend   LifecycleEvent = "suspend"
	EventUnsuspend LifecycleEvent = "unsuspend"
	EventTerminate LifecycleEvent = "terminate"
	EventUsageSync LifecycleEvent = "usage-sync"
)

// Host-side wire names for the lifecycle events.
const (
	hostNameProvision = "CreateAccount"
	hostNameSuspend   = "SuspendAccount"
	hostNameUnsuspend = "UnsuspendAccount"
	hostNameTerminate = "TerminateAccount"
	hostNameUsageSync = "UsageUpdate"
)

func (e LifecycleEvent) Valid() bool {
	switch e {
	case EventProvision, EventSuspend, EventUnsuspend, EventTerminate, EventUsageSync:
		return true
	default:
		return false
	}
}

// HostName returns the billing host's wire name for the event, or the raw
// value for an unknown one.
func (e LifecycleEvent) HostName() string {
	switch e {
	case EventProvision:
		return hostNameProvision
	case EventSuspend:
		return hostNameSuspend
	case EventUnsuspend:
		return hostNameUnsuspend
	case EventTerminate:
		return hostNameTerminate
	case EventUsageSync:
		return hostNameUsageSync
	default:
		return string(e)
	}
}

// ParseEvent resolves a billing-host wire name to a lifecycle event.
func ParseEvent(hostName string) (LifecycleEvent, error) {
	switch hostName {
	case hostNameProvision:
		return EventProvision, nil
	case hostNameSuspend:
		return EventSuspend, nil
	case hostNameUnsuspend:
		return EventUnsuspend, nil
	case hostNameTerminate:
		return EventTerminate, nil
	case hostNameUsageSync:
		return EventUsageSync, nil
	default:
		return "", fmt.Errorf("unrecognized lifecycle event %q", hostName)
	}
}
