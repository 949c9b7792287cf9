package types

// MessageInfo represents information about the message being executed.
// It includes the sender's address and the funds being sent with the message.
type MessageInfo struct {
	// Bech32 encoded sdk.AccAddress executing the contract
	Sender HumanAddress `json:"sender"`
	// Amount of funds send to the contract along with this message
	Funds Array[Coin] `json:"funds"`
}
