// Package constants defines shared constant values.
package constants

// AppName is the project identifier used in logs and metadata.
const AppName = "greetsync"

// CommandName is the primary CLI command name.
const CommandName = "greetsync"

// DefaultTranslationsDir is where the per-language JSON files live, relative to the working directory.
const DefaultTranslationsDir = "assets/translations"

// DefaultMessagesField is the top-level key the greetings are merged under.
const DefaultMessagesField = "new_year_messages"

// MessagesPerLanguage is the number of greetings every language carries, written under keys "0".."5".
const MessagesPerLanguage = 6

// TranslationFileExt is appended to a language code to form its file name.
const TranslationFileExt = ".json"
