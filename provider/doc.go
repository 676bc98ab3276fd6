// Package provider implements the pluggable backend pattern used by the
// transcription and diarization packages: a base Provider interface, a
// generic factory Registry, and a Manager with a pluggable selection
// strategy for choosing among configured backends at runtime.
package provider
