// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 18

// MyAnimeList - credentials for the cover art lookup.
const (
	MalClientID = "mal.client_id"
)

// Title Sanitization - these keys toggle the individual steps of the filename cleanup pipeline.
const (
	TitleIgnoreBrackets    = "title.ignore_brackets"
	TitleIgnoreFiletype    = "title.ignore_filetype"
	TitleReplaceUnderscore = "title.replace_underscore"
	TitleReplaceDots       = "title.replace_dots"
)

// Rich Presence - these keys shape the payload sent to Discord.
const (
	PresenceClientID          = "presence.client_id"
	PresenceShowRemainingTime = "presence.show_remaining_time"
	PresenceDetailsPrefix     = "presence.details_prefix"
)

// Polling - these keys describe where and how often the player is queried.
const (
	PollURL      = "poll.url"
	PollInterval = "poll.interval"
)

// Cover Art - these keys bound the metadata lookup.
const (
	CoverTimeout = "cover.timeout"
	CoverCache   = "cover.cache"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-daemon application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
