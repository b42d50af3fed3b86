package gfx

// Enum is a native API enumerant value.
type Enum uint32

// The subset of OpenGL enumerants the device layer uses.
const (
	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893
	UNIFORM_BUFFER       Enum = 0x8A11
	STATIC_DRAW          Enum = 0x88E4

	TEXTURE_2D                  Enum = 0x0DE1
	TEXTURE_CUBE_MAP            Enum = 0x8513
	TEXTURE_CUBE_MAP_POSITIVE_X Enum = 0x8515
	TEXTURE0                    Enum = 0x84C0

	TEXTURE_MIN_FILTER      Enum = 0x2801
	TEXTURE_MAG_FILTER      Enum = 0x2800
	TEXTURE_WRAP_S          Enum = 0x2802
	TEXTURE_WRAP_T          Enum = 0x2803
	TEXTURE_MAX_LEVEL       Enum = 0x813D
	TEXTURE_INTERNAL_FORMAT Enum = 0x1003
	LINEAR                  Enum = 0x2601
	LINEAR_MIPMAP_LINEAR    Enum = 0x2703
	NEAREST                 Enum = 0x2600
	REPEAT                  Enum = 0x2901

	UNPACK_SWAP_BYTES Enum = 0x0CF0

	COMPRESSED_RGBA_S3TC_DXT1_EXT       Enum = 0x83F1
	COMPRESSED_RGBA_S3TC_DXT3_EXT       Enum = 0x83F2
	COMPRESSED_RGBA_S3TC_DXT5_EXT       Enum = 0x83F3
	COMPRESSED_SRGB_ALPHA_S3TC_DXT1_EXT Enum = 0x8C4D
	COMPRESSED_SRGB_ALPHA_S3TC_DXT3_EXT Enum = 0x8C4E
	COMPRESSED_SRGB_ALPHA_S3TC_DXT5_EXT Enum = 0x8C4F
	COMPRESSED_RED_RGTC1                Enum = 0x8DBB
	COMPRESSED_RG_RGTC2                 Enum = 0x8DBD

	RGB               Enum = 0x1907
	RGBA              Enum = 0x1908
	BGR               Enum = 0x80E0
	BGRA              Enum = 0x80E1
	RED               Enum = 0x1903
	RGB5              Enum = 0x8050
	RGB5_A1           Enum = 0x8057
	RGB8              Enum = 0x8051
	RGBA8             Enum = 0x8058
	RGBA16F           Enum = 0x881A
	R16               Enum = 0x822A
	R16F              Enum = 0x822D
	R32F              Enum = 0x822E
	SRGB8             Enum = 0x8C41
	SRGB8_ALPHA8      Enum = 0x8C43
	DEPTH_COMPONENT   Enum = 0x1902
	DEPTH_COMPONENT24 Enum = 0x81A6
	DEPTH_COMPONENT32 Enum = 0x81A7
	DEPTH_STENCIL     Enum = 0x84F9
	DEPTH24_STENCIL8  Enum = 0x88F0

	UNSIGNED_BYTE              Enum = 0x1401
	UNSIGNED_SHORT             Enum = 0x1403
	UNSIGNED_INT               Enum = 0x1405
	UNSIGNED_INT_24_8          Enum = 0x84FA
	UNSIGNED_SHORT_5_6_5       Enum = 0x8363
	UNSIGNED_SHORT_1_5_5_5_REV Enum = 0x8366
	HALF_FLOAT                 Enum = 0x140B
	FLOAT                      Enum = 0x1406
	SHORT                      Enum = 0x1402
	INT                        Enum = 0x1404

	VERTEX_SHADER   Enum = 0x8B31
	FRAGMENT_SHADER Enum = 0x8B30
	COMPILE_STATUS  Enum = 0x8B81
	LINK_STATUS     Enum = 0x8B82
	ACTIVE_UNIFORMS Enum = 0x8B86

	FLOAT_VEC2   Enum = 0x8B50
	FLOAT_VEC3   Enum = 0x8B51
	FLOAT_VEC4   Enum = 0x8B52
	FLOAT_MAT4   Enum = 0x8B5C
	FLOAT_MAT4x3 Enum = 0x8B67
	FLOAT_MAT3x4 Enum = 0x8B68
	SAMPLER_2D   Enum = 0x8B5E
	SAMPLER_CUBE Enum = 0x8B60

	FRAMEBUFFER           Enum = 0x8D40
	READ_FRAMEBUFFER      Enum = 0x8CA8
	DRAW_FRAMEBUFFER      Enum = 0x8CA9
	COLOR_ATTACHMENT0     Enum = 0x8CE0
	DEPTH_ATTACHMENT      Enum = 0x8D00
	FRAMEBUFFER_COMPLETE  Enum = 0x8CD5
	MAX_COLOR_ATTACHMENTS Enum = 0x8CDF
	FRAMEBUFFER_SRGB      Enum = 0x8DB9

	MAX_VERTEX_ATTRIBS Enum = 0x8869

	DEPTH_TEST     Enum = 0x0B71
	CULL_FACE      Enum = 0x0B44
	BLEND          Enum = 0x0BE2
	SCISSOR_TEST   Enum = 0x0C11
	FRONT          Enum = 0x0404
	BACK           Enum = 0x0405
	FRONT_AND_BACK Enum = 0x0408
	LINE           Enum = 0x1B01
	FILL           Enum = 0x1B02
	GREATER        Enum = 0x0204

	SRC_ALPHA           Enum = 0x0302
	ONE_MINUS_SRC_ALPHA Enum = 0x0303

	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005
	LINES          Enum = 0x0001

	COLOR_BUFFER_BIT uint32 = 0x4000
	DEPTH_BUFFER_BIT uint32 = 0x0100

	LOWER_LEFT  Enum = 0x8CA1
	ZERO_TO_ONE Enum = 0x935F

	QUERY_RESULT           Enum = 0x8866
	QUERY_RESULT_AVAILABLE Enum = 0x8867
	TIMESTAMP              Enum = 0x8E28

	NO_ERROR Enum = 0
)
