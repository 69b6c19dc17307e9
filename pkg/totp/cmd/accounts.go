package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/otpkit/pkg/totp"
)

// accountsFile is the YAML layout read by "code -file":
//
//	accounts:
//	  - issuer: GitHub
//	    account: alice
//	    secret: JBSWY3DPEHPK3PXP
//	  - issuer: AWS
//	    secret: GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ
//	    digits: 8
type accountsFile struct {
	Accounts []totp.Record `yaml:"accounts"`
}

func loadAccounts(path string) ([]totp.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f accountsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	records := make([]totp.Record, 0, len(f.Accounts))
	for i, rec := range f.Accounts {
		if rec.Secret == "" {
			return nil, errors.Join(totp.ErrMissingSecret, fmt.Errorf("account #%d in %s", i+1, path))
		}
		formatted, err := totp.FormatRecord(rec)
		if err != nil {
			return nil, err
		}
		records = append(records, formatted)
	}
	return records, nil
}

func label(rec totp.Record) string {
	switch {
	case rec.Issuer != "" && rec.AccountName != "":
		return rec.Issuer + ":" + rec.AccountName
	case rec.Issuer != "":
		return rec.Issuer
	case rec.AccountName != "":
		return rec.AccountName
	}
	return "-"
}
