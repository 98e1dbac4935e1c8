// Package testutil provides testing utilities shared by the service packages.
//
// It contains three components:
//
// 1. MockTranscriber (mock_transcriber.go): a testify mock of api.Transcriber that
// records every call, including whether the audio file existed when the model was invoked.
//
// 2. MockTranscoder (mock_transcoder.go): a testify mock of audio.Transcoder that writes a
// real output file on success, so cleanup behavior can be asserted on disk.
//
// 3. Fixtures (fixtures.go): a generator for small valid WAV payloads and helpers for
// building multipart upload requests.
//
// # Usage Examples
//
//	func TestPipeline(t *testing.T) {
//	    transcriber := testutil.NewMockTranscriber().
//	        ExpectTranscript("Bonjour", nil)
//	    transcoder := testutil.NewMockTranscoder().ExpectConvert(nil)
//	    // exercise the code under test, then
//	    transcriber.AssertExpectations(t)
//	}
package testutil
