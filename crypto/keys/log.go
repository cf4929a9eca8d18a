// Copyright (c) 2017-2018 The qitmeer developers

package keys

import (
	l "github.com/Qitmeer/bitcoinlib/log"
)

var log = l.New("module", "keys")
