package checkpoint

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/koharjidan/bdsmcoin/internal/model"
)

// A good checkpoint block is surrounded by blocks with reasonable timestamps and contains no
// unusual transactions.
var mainNetCheckpoints = []Checkpoint{
	{0, mustHash("00000447468db4b26ca942c2c6c700b49907e9d0d8ca6ce2bd84223a74972259")},
	{5000, mustHash("00000000001070b052725af8bf364b9442f957347aa5344304c5c031dd373253")},
	{15000, mustHash("000000000003d26b8091f8220f151218bb56fcb648ca70bb92968b83ac469848")},
	{25000, mustHash("000000000004b042f2f61bea4a20d5e8823361d9615e352e34c8ea9b66b3a955")},
	{46000, mustHash("000000000003f239dcabca52a88f491a07da7e5964d6c7ee9eedbf0f0e44d0e5")},
	{75000, mustHash("000000000000d00a287b580ababb3021824188af3c20de707b715b9e1a00a11b")},
	{130000, mustHash("0000000000076471fa8f9657e9b36ab5c0e4d8aeb6521f6fc4c3792cca7cd8ed")},
	{152000, mustHash("000000000016394b208819eb640771ff7f01e8e7d6dfffba3b11c10a486f57bd")},
	{177682, mustHash("0000000000003319bcbad75ba0ead5f82b2783ae385b8063a81d86f6880338a6")},
	{188004, mustHash("000000000000392893fcf5e9360f09123a395f3f00c72023971a12cc9619d325")},
	{200006, mustHash("00000000000434eb6b1b3c22daa0230eae4cdeded7d62794fdb695b3f034298a")},
	{218000, mustHash("000000000006122654c1a462af145c4f0f54ebbc4126bdff5fe07cd1ccafa071")},
	{235000, mustHash("000000000000cbac1b0fd62d9d21402f57d7fc4554da3415c964cfe072ad7539")},
	{239143, mustHash("000000000099e3b5fdf2f2c4906eb0c9ea7e4183dbc30c66ce2b682efa8081be")},
}

// MainNet is the checkpoint set of the production network.
var MainNet = MustNewSet(
	mainNetCheckpoints,
	1410084058, // unix time of the last checkpoint block
	1,          // transactions between genesis and the last checkpoint (tx= in SetBestChain logs)
	2880,       // estimated transactions per day after the last checkpoint
)

// TestNet carries only a zero-hash genesis placeholder; it imposes no meaningful constraint.
var TestNet = MustNewSet(
	[]Checkpoint{{0, chainhash.Hash{}}},
	1374901773,
	0,
	2880,
)

// ForNetwork selects the checkpoint set for network. Unknown networks use mainnet.
func ForNetwork(network model.Network) *Set {
	if network == model.Testnet {
		return TestNet
	}
	return MainNet
}

func mustHash(s string) chainhash.Hash {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic(err)
	}
	return *h
}
