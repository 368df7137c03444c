// Package resolver decides which intent, if any, a normalized user utterance
// maps to. Resolution cascades from exact closed-class keyword sets (farewell,
// info, location, contact, greeting, in that priority order) to bigram Dice
// similarity over every trigger phrase of the knowledge base, accepted only
// above a configurable threshold. The resolver is side-effect free; routing
// of unresolved input to the audit sink belongs to the dialog engine.
package resolver
