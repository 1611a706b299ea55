// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 Caleb James DeLisle
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// scriptcheck is a small command line tool that exercises the script engine
// against a raw transaction: it deserializes the transaction, evaluates the
// requested input's scriptSig/witness against the given previous output, and
// reports whether the script validates.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/pkt-cash/pktscript/pktlog/log"
	"github.com/pkt-cash/pktscript/txscript"
	"github.com/pkt-cash/pktscript/wire"
)

type config struct {
	Tx         string `short:"t" long:"tx" description:"Hex-encoded raw transaction to check" required:"true"`
	Index      int    `short:"i" long:"index" description:"Index of the input to verify" default:"0"`
	PrevScript string `short:"p" long:"prevscript" description:"Hex-encoded scriptPubKey of the output being spent" required:"true"`
	Amount     int64  `short:"a" long:"amount" description:"Value in satoshis of the output being spent"`
	Standard   bool   `short:"s" long:"standard" description:"Use standard (relay policy) verify flags instead of the consensus minimum"`
	Debug      string `short:"d" long:"debug" description:"Logging level: trace, debug, info, warn, error, critical" default:"info"`
}

func main() {
	if err := realMain(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func realMain() error {
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	if _, errr := parser.Parse(); errr != nil {
		if e, ok := errr.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil
	}

	if err := log.SetLogLevels(cfg.Debug); err != nil {
		return fmt.Errorf("invalid debug level: %v", err)
	}

	txBytes, err := hex.DecodeString(cfg.Tx)
	if err != nil {
		return fmt.Errorf("decoding tx hex: %w", err)
	}
	var tx wire.MsgTx
	if errr := tx.Deserialize(bytes.NewReader(txBytes)); errr != nil {
		return fmt.Errorf("deserializing tx: %v", errr)
	}

	pkScript, err := hex.DecodeString(cfg.PrevScript)
	if err != nil {
		return fmt.Errorf("decoding prevscript hex: %w", err)
	}

	log.Infof("checking input %d of tx %v against %v",
		cfg.Index, log.Txid(tx.TxHash().String()), txscript.GetScriptClass(pkScript))

	flagSet := txscript.ScriptBip16 | txscript.ScriptVerifyWitness | txscript.ScriptVerifyTaproot
	if cfg.Standard {
		flagSet = txscript.StandardVerifyFlags
	}

	prevOuts := make([]*wire.TxOut, len(tx.TxIn))
	for i := range prevOuts {
		if i == cfg.Index {
			prevOuts[i] = wire.NewTxOut(cfg.Amount, pkScript)
		} else {
			prevOuts[i] = wire.NewTxOut(0, nil)
		}
	}

	sigCache := txscript.NewSigCache(0)
	hashCache := txscript.NewTxSigHashes(&tx)

	vm, errr := txscript.NewEngine(pkScript, &tx, cfg.Index, flagSet, sigCache, hashCache, cfg.Amount, prevOuts)
	if errr != nil {
		return fmt.Errorf("constructing engine: %v", errr)
	}

	if errr := vm.Execute(); errr != nil {
		log.Debugf("script %v did not validate: %v", log.Txid(tx.TxHash().String()), errr)
		fmt.Println("INVALID:", errr.Message())
		os.Exit(1)
	}

	log.Info("script is valid")
	fmt.Println("OK")
	return nil
}
