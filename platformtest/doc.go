// Package platformtest is an in-process stand-in for the Grid
// platform runtime: a platform.Caller whose trust authority, callback
// queue, and voice driver live in memory.
//
// It exists so protocol behavior can be exercised without the real
// runtime: tickets carry a keyed BLAKE3 MAC so tampering is detected,
// validation verdicts are queued as real fixed-size callback payloads
// and delivered through RunCallbacks, and voice frames are genuine
// compressed PCM that round-trips through DecompressVoice. It
// deliberately approximates: the codec is not the runtime's lossy
// codec and timings are driven by an injectable clock, not a driver.
package platformtest
