package admetlab2

import "time"

const (
	// DefaultEndpoint is the local ADMETLab2 microservice run endpoint.
	DefaultEndpoint = "http://127.0.0.1:5000/run"
	// DefaultTimeout bounds a single service call.
	DefaultTimeout = 120 * time.Second
	// UsageText is printed when positional arguments are missing.
	UsageText = "Usage: admetlab2 <smiles_or_input_file> <output_json>"
	// OutputIndent is the indentation used for the output file.
	OutputIndent = "  "

	outputFilePerm = 0o644
)
