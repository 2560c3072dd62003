package tracker

// Display is the countdown as per-digit arrays, ready for digit-by-digit rendering.
type Display struct {
	Minutes [2]byte
	Seconds [2]byte
}

// Zero is the display shown when no cycle is running.
var Zero = NewDisplay(0)

// NewDisplay splits remaining seconds into zero-padded minute and second digits.
func NewDisplay(remaining int) Display {
	if remaining < 0 {
		remaining = 0
	}
	return Display{
		Minutes: pad2(remaining / 60),
		Seconds: pad2(remaining % 60),
	}
}

func pad2(n int) [2]byte {
	if n > 99 {
		n = 99
	}
	return [2]byte{byte('0' + n/10), byte('0' + n%10)}
}

// MinutesText returns the two minute digits.
func (d Display) MinutesText() string {
	return string(d.Minutes[:])
}

// SecondsText returns the two second digits.
func (d Display) SecondsText() string {
	return string(d.Seconds[:])
}

// String renders the display as MM:SS.
func (d Display) String() string {
	return d.MinutesText() + ":" + d.SecondsText()
}
