package sttp

// Version is the current sttp release.
const Version = "0.1.0"
