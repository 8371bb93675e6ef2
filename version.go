package lingora

// Version is the SDK version reported in the User-Agent header.
const Version = "1.0.0"
