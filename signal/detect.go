// SPDX-License-Identifier: EPL-2.0

package signal

// Detector reduces each frame to a level, such as an envelope or an RMS.
// *envelope.Detector and *rms.Rms implement it.
type Detector[F any] interface {
	Next(f F) F
}

// DetectEnvelope yields the level d detects for every frame of sig.
func DetectEnvelope[F any](sig Signal[F], d Detector[F]) Signal[F] {
	return Map(sig, d.Next)
}
