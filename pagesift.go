// Package pagesift scrapes a web page down to its visible text and asks a
// language model to pull out the parts a user describes.
//
// The pipeline is: fetch rendered HTML, locate the body, strip scripts and
// styles, split the remaining text into fixed-size segments, send every
// segment to a model together with the user's description, and join the
// answers in segment order.
//
// This package contains domain types, interfaces and the pure pipeline
// stages following Ben Johnson's Standard Package Layout. Implementations of
// the external collaborators live in subdirectories named after their
// primary dependency (e.g., rod/, goquery/, gemini/).
package pagesift
