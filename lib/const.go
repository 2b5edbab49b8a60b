package lib

// Version of the vssprobe tool.
var Version = "1.0.0"

const (
	// ListKeyVersionsPath is the VSS endpoint exercised by the probe.
	ListKeyVersionsPath = "/vss/listKeyVersions"

	// ContentTypeProtobuf identifies the request body encoding.
	ContentTypeProtobuf = "application/x-protobuf"
)
