package machina

// Version is the library release, set here and read by the CLI.
const Version = "0.3.0"
