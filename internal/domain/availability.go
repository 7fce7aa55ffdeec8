package domain

// Window is a time range during which a hall cannot be booked
type Window struct {
	StartAt int64 // unix seconds
	Length  int   // minutes
}

// EndAt returns the end of the window in unix seconds
func (w Window) EndAt() int64 {
	return w.StartAt + int64(w.Length)*60
}

// Blocks returns true if the reservation intersects the window
func (w Window) Blocks(r Reservation) bool {
	return r.StartAt < w.EndAt() && w.StartAt < r.EndAt()
}
