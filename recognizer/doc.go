// Package recognizer defines the contract between the preprocessing core and
// the downstream speech-recognition engine.
//
// The engine itself is an external collaborator: this package models its
// capability set (context initialization, transcription, model information,
// multilingual check, release) as the Recognizer interface and ships only a
// non-functional Placeholder implementation that returns fixed strings and
// performs no inference. The preprocessing pipeline's output buffers are the
// intended input to Transcribe; a real whisper.cpp-backed implementation can
// be substituted later without touching callers.
//
//	rec, err := recognizer.NewPlaceholder("models/ggml-base.bin", 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rec.Close()
//
//	text, err := rec.Transcribe(samples, 16000, "en", false)
package recognizer
