// @title Transcription API
// @version 1.0
// @description Upload an audio recording and receive its French transcription.
// @host localhost:8000
// @BasePath /
package main

import "github.com/fabmdb/ai-order/cmd/transcribe-server/cmd"

func main() {
	cmd.Execute()
}
