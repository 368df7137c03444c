// Package knowledge holds the static knowledge base: intents with trigger
// phrases and response templates, plus the structured course data served by
// the menu flow. The base is loaded once at startup from JSON or YAML and is
// read-only at runtime.
package knowledge
