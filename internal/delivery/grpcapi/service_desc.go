package grpcapi

import (
	"context"

	"google.golang.org/grpc"

	"github.com/LavaJover/shvark-flashdeal-service/internal/delivery/contract"
)

const serviceName = "flashdeal.v1.FlashDealService"

type FlashDealServiceServer interface {
	CreateDeal(context.Context, *contract.CreateDealRequest) (*contract.DealResponse, error)
	ClaimDeal(context.Context, *contract.ClaimDealRequest) (*contract.ClaimDealResponse, error)
	GetDealStatus(context.Context, *contract.GetDealStatusRequest) (*contract.DealResponse, error)
	CancelDeal(context.Context, *contract.CancelDealRequest) (*contract.CancelDealResponse, error)
	RunExpirySweep(context.Context, *contract.RunExpirySweepRequest) (*contract.RunExpirySweepResponse, error)
}

func RegisterFlashDealServiceServer(s grpc.ServiceRegistrar, srv FlashDealServiceServer) {
	s.RegisterService(&FlashDealServiceDesc, srv)
}

var FlashDealServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*FlashDealServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateDeal", Handler: unary(func(srv FlashDealServiceServer, ctx context.Context, in *contract.CreateDealRequest) (any, error) {
			return srv.CreateDeal(ctx, in)
		}, "CreateDeal")},
		{MethodName: "ClaimDeal", Handler: unary(func(srv FlashDealServiceServer, ctx context.Context, in *contract.ClaimDealRequest) (any, error) {
			return srv.ClaimDeal(ctx, in)
		}, "ClaimDeal")},
		{MethodName: "GetDealStatus", Handler: unary(func(srv FlashDealServiceServer, ctx context.Context, in *contract.GetDealStatusRequest) (any, error) {
			return srv.GetDealStatus(ctx, in)
		}, "GetDealStatus")},
		{MethodName: "CancelDeal", Handler: unary(func(srv FlashDealServiceServer, ctx context.Context, in *contract.CancelDealRequest) (any, error) {
			return srv.CancelDeal(ctx, in)
		}, "CancelDeal")},
		{MethodName: "RunExpirySweep", Handler: unary(func(srv FlashDealServiceServer, ctx context.Context, in *contract.RunExpirySweepRequest) (any, error) {
			return srv.RunExpirySweep(ctx, in)
		}, "RunExpirySweep")},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "flashdeal/v1/flashdeal.proto",
}

// unary adapts a typed method to the grpc.MethodHandler signature.
func unary[Req any](call func(FlashDealServiceServer, context.Context, *Req) (any, error), method string) grpc.MethodHandler {
	fullMethod := "/" + serviceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(FlashDealServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(FlashDealServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// FlashDealServiceClient is the client side of FlashDealServiceDesc. Calls are
// sent with the json content-subtype.
type FlashDealServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFlashDealServiceClient(cc grpc.ClientConnInterface) *FlashDealServiceClient {
	return &FlashDealServiceClient{cc: cc}
}

func (c *FlashDealServiceClient) invoke(ctx context.Context, method string, in, out any, opts ...grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+serviceName+"/"+method, in, out, opts...)
}

func (c *FlashDealServiceClient) CreateDeal(ctx context.Context, in *contract.CreateDealRequest, opts ...grpc.CallOption) (*contract.DealResponse, error) {
	out := new(contract.DealResponse)
	if err := c.invoke(ctx, "CreateDeal", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FlashDealServiceClient) ClaimDeal(ctx context.Context, in *contract.ClaimDealRequest, opts ...grpc.CallOption) (*contract.ClaimDealResponse, error) {
	out := new(contract.ClaimDealResponse)
	if err := c.invoke(ctx, "ClaimDeal", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FlashDealServiceClient) GetDealStatus(ctx context.Context, in *contract.GetDealStatusRequest, opts ...grpc.CallOption) (*contract.DealResponse, error) {
	out := new(contract.DealResponse)
	if err := c.invoke(ctx, "GetDealStatus", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FlashDealServiceClient) CancelDeal(ctx context.Context, in *contract.CancelDealRequest, opts ...grpc.CallOption) (*contract.CancelDealResponse, error) {
	out := new(contract.CancelDealResponse)
	if err := c.invoke(ctx, "CancelDeal", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *FlashDealServiceClient) RunExpirySweep(ctx context.Context, in *contract.RunExpirySweepRequest, opts ...grpc.CallOption) (*contract.RunExpirySweepResponse, error) {
	out := new(contract.RunExpirySweepResponse)
	if err := c.invoke(ctx, "RunExpirySweep", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
