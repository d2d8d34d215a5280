// Package laradoc provides a CLI question-answering assistant for the
// Laravel documentation. It scrapes the published manual, embeds the
// content into a persisted similarity index, and answers natural language
// questions by letting a language model pick among topic-scoped retrieval
// tools before synthesizing a final answer.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// gemini/, firecrawl/).
package laradoc
