// Package moderation provides a message moderation engine. The primary type in this package
// is the Engine, which scores messages and keeps per-user strike and ban state. It is initialized
// with parameters defined in the Config struct and is safe for concurrent use.
//
// Scoring combines several signals with a fixed precedence:
//
//   - Learned safe patterns: text sharing at least two words with messages reported as false positives
//     is never spam. This override wins even over severe terms.
//
//   - Rule scorer: a lexicon of severe terms, per-language explicit terms, regular expression patterns
//     and a punctuation heuristic. The built-in lexicon is embedded, a replacement can be loaded
//     from yaml with LoadLexicon and activated with Engine.ReloadLexicon.
//
//   - Learned spam patterns: words of messages reported as false negatives add to the rule severity.
//
//   - Classifier: any implementation of the Classifier interface. NeuralModel loads an exported
//     tf-idf + dense network model, BayesModel learns from spam and ham samples. Classifier calls are
//     bounded by Config.ClassifierTimeout, a failed or slow call falls back to rule-only decisions.
//
// Strikes are kept by the Ledger. A strike arriving after the reset window starts the count over,
// reaching the strike limit signals a ban. Ban drops the strike record.
//
// Ledger and LearningStore state is serialized as versioned json snapshots. With a SnapshotStore set,
// every mutation is written through before the call returns, and Engine.Load restores both at startup.
package moderation
