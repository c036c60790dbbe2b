package theme

// IconSet holds the glyphs a theme prefixes output with.
type IconSet struct {
	Success  string `yaml:"success,omitempty"`
	Error    string `yaml:"error,omitempty"`
	Warning  string `yaml:"warning,omitempty"`
	Info     string `yaml:"info,omitempty"`
	Debug    string `yaml:"debug,omitempty"`
	Question string `yaml:"question,omitempty"`
	Pointer  string `yaml:"pointer,omitempty"`
	Bullet   string `yaml:"bullet,omitempty"`
	Ellipsis string `yaml:"ellipsis,omitempty"`
}

// UnicodeIcons is the default icon set for terminals with unicode support.
var UnicodeIcons = IconSet{
	Success:  "✓",
	Error:    "✗",
	Warning:  "!",
	Info:     "•",
	Debug:    "○",
	Question: "?",
	Pointer:  "❯",
	Bullet:   "·",
	Ellipsis: "…",
}

// ASCIIIcons is the fallback set for dumb or non-unicode terminals.
var ASCIIIcons = IconSet{
	Success:  "+",
	Error:    "x",
	Warning:  "!",
	Info:     "*",
	Debug:    "o",
	Question: "?",
	Pointer:  ">",
	Bullet:   "-",
	Ellipsis: "...",
}

// merge fills empty fields of s from fallback.
func (s IconSet) merge(fallback IconSet) IconSet {
	if s.Success == "" {
		s.Success = fallback.Success
	}
	if s.Error == "" {
		s.Error = fallback.Error
	}
	if s.Warning == "" {
		s.Warning = fallback.Warning
	}
	if s.Info == "" {
		s.Info = fallback.Info
	}
	if s.Debug == "" {
		s.Debug = fallback.Debug
	}
	if s.Question == "" {
		s.Question = fallback.Question
	}
	if s.Pointer == "" {
		s.Pointer = fallback.Pointer
	}
	if s.Bullet == "" {
		s.Bullet = fallback.Bullet
	}
	if s.Ellipsis == "" {
		s.Ellipsis = fallback.Ellipsis
	}
	return s
}
