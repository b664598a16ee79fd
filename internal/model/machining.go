package model

import "strings"

// CutSettings describes how a solved layout is milled out of a physical board.
type CutSettings struct {
	CellSize float64 `json:"cell_size"` // mm per board cell

	ToolDiameter float64 `json:"tool_diameter"` // End mill diameter in mm
	FeedRate     float64 `json:"feed_rate"`     // Cutting feed rate mm/min
	PlungeRate   float64 `json:"plunge_rate"`   // Plunge feed rate mm/min
	SpindleSpeed int     `json:"spindle_speed"` // RPM
	SafeZ        float64 `json:"safe_z"`        // Safe retract height mm
	CutDepth     float64 `json:"cut_depth"`     // Total material thickness mm
	PassDepth    float64 `json:"pass_depth"`    // Depth per pass mm

	// Holding tabs on the board outline keep the finished pieces in the stock
	TabWidth    float64 `json:"tab_width"`
	TabHeight   float64 `json:"tab_height"`
	TabsPerSide int     `json:"tabs_per_side"`

	Controller string `json:"controller"` // Name of the controller profile
}

func DefaultCutSettings() CutSettings {
	return CutSettings{
		CellSize:     20,
		ToolDiameter: 3,
		FeedRate:     1200,
		PlungeRate:   300,
		SpindleSpeed: 18000,
		SafeZ:        5,
		CutDepth:     6,
		PassDepth:    3,
		TabWidth:     6,
		TabHeight:    2,
		TabsPerSide:  0,
		Controller:   "Generic",
	}
}

// ControllerProfile is the G-code dialect of one CNC controller.
type ControllerProfile struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	StartCode    []string `json:"start_code"`    // Commands at start of file
	SpindleStart string   `json:"spindle_start"` // Spindle on command (e.g., "M3 S%d")
	SpindleStop  string   `json:"spindle_stop"`

	RapidMove string `json:"rapid_move"`
	FeedMove  string `json:"feed_move"`

	EndCode []string `json:"end_code"` // [SafeZ] is replaced by the retract height

	CommentPrefix string `json:"comment_prefix"`
	CommentSuffix string `json:"comment_suffix"`

	DecimalPlaces int `json:"decimal_places"`
}

// ControllerProfiles lists the built-in dialects. Generic must stay last.
var ControllerProfiles = []ControllerProfile{
	{
		Name:          "Grbl",
		Description:   "Grbl-based controllers",
		StartCode:     []string{"G90", "G21", "G17"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X0 Y0", "M5", "M2"},
		CommentPrefix: ";",
		DecimalPlaces: 3,
	},
	{
		Name:          "Mach3",
		Description:   "Mach3 CNC control software",
		StartCode:     []string{"G90", "G21", "G17", "G94"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[SafeZ]", "G28 X0 Y0", "M5", "M30"},
		CommentPrefix: "(",
		CommentSuffix: ")",
		DecimalPlaces: 4,
	},
	{
		Name:          "LinuxCNC",
		Description:   "LinuxCNC (formerly EMC2)",
		StartCode:     []string{"G90", "G21", "G17", "G94"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X0 Y0", "M5", "M2"},
		CommentPrefix: ";",
		DecimalPlaces: 4,
	},
	{
		Name:          "Generic",
		Description:   "Generic standard GCode",
		StartCode:     []string{"G90", "G21"},
		SpindleStart:  "M3 S%d",
		SpindleStop:   "M5",
		RapidMove:     "G0",
		FeedMove:      "G1",
		EndCode:       []string{"G0 Z[SafeZ]", "G0 X0 Y0", "M5", "M2"},
		CommentPrefix: ";",
		DecimalPlaces: 3,
	},
}

// GetControllerProfile returns a profile by name, ignoring case, or the
// Generic profile if not found.
func GetControllerProfile(name string) ControllerProfile {
	for _, p := range ControllerProfiles {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return ControllerProfiles[len(ControllerProfiles)-1]
}

// ControllerNames returns the names of all built-in profiles.
func ControllerNames() []string {
	names := make([]string, len(ControllerProfiles))
	for i, p := range ControllerProfiles {
		names[i] = p.Name
	}
	return names
}
