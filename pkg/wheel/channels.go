package wheel

import "gatewheel/pkg/hexagram"

// Channel is a relational pairing of two gates. The wheel carries 36 of
// them; a channel ring draws each member at its own angle, never at the
// midpoint between the two.
type Channel struct {
	A, B hexagram.Gate
	Name string
}

// channels is the fixed relational table, ordered by (A, B).
var channels = []Channel{
	{1, 8, "Inspiration"},
	{2, 14, "The Beat"},
	{3, 60, "Mutation"},
	{4, 63, "Logic"},
	{5, 15, "Rhythm"},
	{6, 59, "Mating"},
	{7, 31, "The Alpha"},
	{9, 52, "Concentration"},
	{10, 20, "Awakening"},
	{10, 34, "Exploration"},
	{10, 57, "Perfected Form"},
	{11, 56, "Curiosity"},
	{12, 22, "Openness"},
	{13, 33, "The Prodigal"},
	{16, 48, "The Wavelength"},
	{17, 62, "Acceptance"},
	{18, 58, "Judgment"},
	{19, 49, "Synthesis"},
	{20, 34, "Charisma"},
	{20, 57, "The Brainwave"},
	{21, 45, "The Money Line"},
	{23, 43, "Structuring"},
	{24, 61, "Awareness"},
	{25, 51, "Initiation"},
	{26, 44, "Surrender"},
	{27, 50, "Preservation"},
	{28, 38, "Struggle"},
	{29, 46, "Discovery"},
	{30, 41, "Recognition"},
	{32, 54, "Transformation"},
	{34, 57, "Power"},
	{35, 36, "Transitoriness"},
	{37, 40, "Community"},
	{39, 55, "Emoting"},
	{42, 53, "Maturation"},
	{47, 64, "Abstraction"},
}

// ChannelCount is the number of relational gate pairs on the wheel.
const ChannelCount = 36

// Channels returns a copy of the fixed channel table.
func Channels() []Channel {
	out := make([]Channel, len(channels))
	copy(out, channels)
	return out
}

// ChannelsOf returns the channels a gate participates in, in table order.
func ChannelsOf(g hexagram.Gate) []Channel {
	var out []Channel
	for _, c := range channels {
		if c.A == g || c.B == g {
			out = append(out, c)
		}
	}
	return out
}
