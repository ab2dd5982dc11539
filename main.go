/*
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"log"

	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"

	"github.com/buckhoff/TokenContract-sub001/platform"
	"github.com/buckhoff/TokenContract-sub001/sale"
	"github.com/buckhoff/TokenContract-sub001/tier"
	"github.com/buckhoff/TokenContract-sub001/vesting"
)

func main() {
	logger := kalpsdk.NewLogger()

	tierContract := kalpsdk.Contract{IsPayableContract: false}
	tierContract.Logger = logger
	tierContract.Name = "TierContract"

	vestingContract := kalpsdk.Contract{IsPayableContract: false}
	vestingContract.Logger = logger
	vestingContract.Name = "VestingContract"

	saleContract := kalpsdk.Contract{IsPayableContract: false}
	saleContract.Logger = logger
	saleContract.Name = "SaleContract"

	teachToken := platform.NewTeachTokenClient()

	saleChaincode, err := kalpsdk.NewChaincode(
		&tier.SmartContract{Contract: tierContract},
		&vesting.SmartContract{
			Contract: vestingContract,
			Token:    teachToken,
		},
		&sale.SmartContract{
			Contract: saleContract,
			Oracle:   platform.NewOracleClient(),
			Token:    teachToken,
			Payments: platform.NewPaymentTokenClient(),
			Notifier: platform.NewStabilityClient(),
		},
	)
	if err != nil {
		log.Panicf("Error creating sale chaincode: %v", err)
	}

	if err := saleChaincode.Start(); err != nil {
		log.Panicf("Error starting sale chaincode: %v", err)
	}
}
