package migration

import "github.com/ethereum/go-ethereum/common"

const (
	// ChainID is the Avalanche C-Chain id stamped on every batch envelope.
	ChainID = "43114"

	// BatchSize is the number of transactions bundled into one output file.
	BatchSize = 5

	// MigrateFunctionSig is the loan contract function each transaction calls.
	MigrateFunctionSig = "migrateNft(uint256,address,address)"
)

var (
	// PharaohLoan is the loan contract every transaction targets.
	PharaohLoan = common.HexToAddress("0xf6A044c3b2a3373eF2909E2474f3229f23279B5F")
	// XPharaohLoan is the new loan contract passed as the migration destination.
	XPharaohLoan = common.HexToAddress("0x6Bf2Fe80D245b06f6900848ec52544FBdE6c8d2C")
	// PortfolioFactory is the factory contract passed as the last call argument.
	PortfolioFactory = common.HexToAddress("0x52d43C377e498980135C8F2E858f120A18Ea96C2")
)

// TokenIDs lists the NFTs to migrate, in the order they must be processed.
var TokenIDs = []uint64{
	5959, 5961, 6335, 6524, 4593, 5603, 5597, 4613, 5596, 5418,
	6336, 5451, 6088, 4997, 6301, 4345, 6769, 502, 6179, 6346,
	6351, 6511, 6378, 5447, 6397, 6452, 6136, 6734, 6430, 3601,
	5595, 204, 6106, 6554, 6459, 6427, 6341, 5618, 6396, 195,
	6107, 5186, 327, 3802, 6457, 4554, 6530, 5510, 6163, 6304,
	6699, 3884, 6617, 6513, 4141, 6391, 3993, 108, 6613, 420,
	3818, 5604, 6135, 3178, 3111, 4390, 4240, 6517, 4995, 100,
	16201, 93, 4496, 6093, 3618, 6515, 3383,
}
