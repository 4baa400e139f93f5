package entity

// Estados fijos de stock (tabla statuses, sembrada por migración).
const (
	StatusFine = "fine" // quantity > alert_threshold
	StatusLow  = "low"  // 0 < quantity <= alert_threshold
	StatusOut  = "out"  // quantity <= 0
)

// Status representa uno de los tres estados fijos de stock.
type Status struct {
	ID    string // fine | low | out
	Label string
}
