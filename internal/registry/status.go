// internal/registry/status.go
package registry

// Inverter status codes shared across series.
const (
	StatusWaiting = 0
	StatusNormal  = 1
	StatusFault   = 3
	StatusStandby = 5
)

var statusNames = map[int]string{
	StatusWaiting: "waiting",
	StatusNormal:  "normal",
	2:             "discharge",
	StatusFault:   "fault",
	4:             "flash",
	StatusStandby: "standby",
}

// StatusText converts an inverter_status code to a readable name.
func StatusText(code int) string {
	if s, ok := statusNames[code]; ok {
		return s
	}
	return "unknown"
}
