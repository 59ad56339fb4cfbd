package troller

// Version is the release of the tool.
const Version = "0.3.0"
