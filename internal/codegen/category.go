package codegen

import "strings"

// categories maps opcode prefixes to palette names.
var categories = []struct {
	prefix string
	name   string
}{
	{"motion_", "motion"},
	{"looks_", "looks"},
	{"sound_", "sound"},
	{"event_", "events"},
	{"control_", "control"},
	{"sensing_", "sensing"},
	{"operator_", "operators"},
	{"data_", "variables"},
	{"procedures_", "my blocks"},
	{"argument_", "my blocks"},
	{"pen_", "pen"},
	{"music_", "music"},
	{"videoSensing_", "video sensing"},
	{"text2speech_", "text to speech"},
	{"translate_", "translate"},
	{"makeymakey_", "Makey Makey"},
	{"microbit_", "micro:bit"},
	{"ev3_", "LEGO EV3"},
	{"boost_", "LEGO BOOST"},
	{"wedo2_", "LEGO WeDo 2.0"},
	{"gdxfor_", "Go Direct Force & Acceleration"},
}

// Category returns the palette name for an opcode, or "unsupported".
func Category(opcode string) string {
	for _, c := range categories {
		if strings.HasPrefix(opcode, c.prefix) {
			return c.name
		}
	}
	return "unsupported"
}
