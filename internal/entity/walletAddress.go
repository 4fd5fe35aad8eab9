package entity

type WalletAddress struct {
	Address string `json:"address"`
	Label   string `json:"label"`
	Index   int64  `json:"index"`
	Used    bool   `json:"used"`
}
