package presence

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var rpcPattern = regexp.MustCompile(`rpc (\w+)\(google\.protobuf\.\w+\) returns \((stream )?google\.protobuf\.\w+\)`)

func TestServiceDesc_Matches_Proto(t *testing.T) {
	req := require.New(t)
	source, err := os.ReadFile("presence.proto")
	req.NoError(err)

	var unary, streams []string
	for _, m := range rpcPattern.FindAllStringSubmatch(string(source), -1) {
		if m[2] != "" {
			streams = append(streams, m[1])
		} else {
			unary = append(unary, m[1])
		}
	}

	var descUnary, descStreams []string
	for _, m := range PresenceService_ServiceDesc.Methods {
		descUnary = append(descUnary, m.MethodName)
	}
	for _, s := range PresenceService_ServiceDesc.Streams {
		req.True(s.ServerStreams)
		descStreams = append(descStreams, s.StreamName)
	}

	req.Equal(unary, descUnary)
	req.Equal(streams, descStreams)
	req.Equal("/"+PresenceService_ServiceDesc.ServiceName+"/ListOnline", PresenceService_ListOnline_FullMethodName)
	req.Equal("/"+PresenceService_ServiceDesc.ServiceName+"/Watch", PresenceService_Watch_FullMethodName)
}
