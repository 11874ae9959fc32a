package common

// AppName is used for the data directory, redis key namespace and prompts.
const AppName = "recipebox"
