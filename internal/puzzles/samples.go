package puzzles

// bundledSamples are small Slither Link puzzles shipped with the binary so
// cmd/test and cmd/bench have something to run without requiring the
// caller to supply puzzle files. Sizes and hint layouts mirror the
// end-to-end scenarios this solver is tested against.
var bundledSamples = []CompactPuzzle{
	{
		Name: "trivial-zeros-3x3",
		Text: "000\n000\n000",
	},
	{
		Name: "single-center-3x3",
		Text: "___\n_3_\n___",
	},
	{
		Name: "adjacent-threes-5x5",
		Text: "_____\n_____\n_33__\n_____\n_____",
	},
	{
		Name: "diagonal-threes-3x3",
		Text: "3__\n___\n__3",
	},
	{
		Name: "twos-2x2",
		Text: "2_\n_2",
	},
}
