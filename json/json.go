package json

import jsoniter "github.com/json-iterator/go"

var Json = jsoniter.ConfigCompatibleWithStandardLibrary
