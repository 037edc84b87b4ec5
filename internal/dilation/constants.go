package dilation

const (
	LogMsgDilatedTimeReset = "Dilated time reset by galaxy threshold purchase"
)
