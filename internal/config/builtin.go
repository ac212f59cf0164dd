package config

// DefaultBuiltinLayout is used when tiling.default_layout is unset.
const DefaultBuiltinLayout = "grid"

// BuiltinLayouts returns the layouts available without any config file.
// User layouts with the same name replace them.
func BuiltinLayouts() map[string]Layout {
	return map[string]Layout{
		"grid": {
			Mode:            LayoutModeAuto,
			TileRegion:      TileRegion{Type: RegionFull},
			FlexibleLastRow: true,
		},
		"columns": {
			Mode:       LayoutModeHorizontal,
			TileRegion: TileRegion{Type: RegionFull},
		},
		"rows": {
			Mode:       LayoutModeVertical,
			TileRegion: TileRegion{Type: RegionFull},
		},
		"half-left": {
			Mode:            LayoutModeAuto,
			TileRegion:      TileRegion{Type: RegionLeftHalf},
			FlexibleLastRow: true,
		},
		"half-right": {
			Mode:            LayoutModeAuto,
			TileRegion:      TileRegion{Type: RegionRightHalf},
			FlexibleLastRow: true,
		},
		"master-stack": {
			Mode:       LayoutModeMasterStack,
			TileRegion: TileRegion{Type: RegionFull},
			MasterStack: MasterStack{
				MasterWidthPercent: 50,
				MaxStackRows:       4,
				MaxStackCols:       1,
			},
		},
	}
}
