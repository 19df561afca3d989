// Package model defines the core data types shared across the ergscan
// pipeline: normalized geometry (Point, BBox), recognizer detections,
// and the recognized workout table (Cell, TableRow, RecognizedTable).
//
// All types are plain value types with no behavior beyond accessors;
// optional fields are represented as nil pointers, where nil always
// means "not yet recognized" rather than a zero reading.
//
// Coordinates throughout the pipeline use a normalized 0-1 space with
// a top-left origin relative to the instrument's display region. Raw
// recognizer output in other conventions is converted by the guide
// package before it reaches any other stage.
package model
