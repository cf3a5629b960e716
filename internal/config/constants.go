package config

const AppName = "scribe"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "scribe.log"

const DefaultTabWidth = 4
const DefaultMaxHistory = 1000
