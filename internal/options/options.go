// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input   string `arg:"positional" usage:"source file to assemble"`
	Output  string `flag:"o" usage:"output .ch8 file (default: input name with .ch8 extension)"`
	Listing string `flag:"l" usage:"write an assembly listing to this file"`
	Batch   string `flag:"batch" usage:"batch process files matching pattern (e.g. *.c8s)"`
}

// Flags contains behavior options.
type Flags struct {
	Verify bool `flag:"verify" usage:"verify output by decoding every emitted instruction"`
	Dump   bool `flag:"dump" usage:"print the parsed program and label table"`
	Debug  bool `flag:"debug" usage:"enable debug logging"`
	Quiet  bool `flag:"q" usage:"quiet mode"`
}

// Program options of the assembler.
type Program struct {
	Parameters
	Flags
}
