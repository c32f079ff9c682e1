// Package tpmscore implements the signal-processing and protocol-decoding
// engine of a sub-GHz Tire Pressure Monitoring System (TPMS) receiver.
//
// The engine ingests a stream of RF pulse samples (level transitions with
// durations), locates coherent transmissions within that stream, decodes
// them through a registry of vehicle-specific TPMS protocol decoders, and
// hands back structured sensor readings (tire ID, pressure, temperature,
// protocol name).
//
// Everything outside this package — radio tuning, interrupt delivery, UI
// rendering, persistent logging — is a collaborator's job. This package
// does no file I/O and never logs; callers decide what to do with the
// bool/(T, bool) outcomes it returns.
package tpmscore
